// Package buildinfo provides build information for muDB.
//
// Values are injected at build time via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/mudb-go/internal/infra/buildinfo.Version=v1.0.0 \
//	  -X github.com/yndnr/mudb-go/internal/infra/buildinfo.Commit=abc123"
//
// GoVersion defaults to the toolchain that compiled the binary.
package buildinfo
