package benchmark

import (
	"context"
	"fmt"
	"io"
	"net"
	"testing"
	"time"

	"github.com/yndnr/mudb-go/internal/cli/connection"
	"github.com/yndnr/mudb-go/internal/server/redisserver"
	"github.com/yndnr/mudb-go/internal/storage/memory"
	"github.com/yndnr/mudb-go/internal/telemetry/logger"
	"github.com/yndnr/mudb-go/internal/telemetry/metric"
	"github.com/yndnr/mudb-go/pkg/resp"
)

// startServer runs a RESP server on a loopback port for the life of b.
func startServer(b *testing.B, opts ...redisserver.Option) string {
	b.Helper()

	cfg := redisserver.DefaultConfig()
	cfg.Addr = "127.0.0.1:0"

	opts = append([]redisserver.Option{redisserver.WithLogger(logger.Discard())}, opts...)
	srv := redisserver.New(cfg, memory.New(), opts...)
	if err := srv.Listen(); err != nil {
		b.Fatalf("Listen failed: %v", err)
	}

	go func() { _ = srv.Serve(context.Background()) }()
	for !srv.Ready() {
		time.Sleep(time.Millisecond)
	}

	b.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})
	return srv.Addr().String()
}

func dial(b *testing.B, addr string) *connection.Client {
	b.Helper()
	client, err := connection.Dial(context.Background(), addr, 5*time.Second)
	if err != nil {
		b.Fatalf("Dial failed: %v", err)
	}
	b.Cleanup(func() { _ = client.Close() })
	return client
}

// BenchmarkServerRoundTrip benchmarks one request/reply per iteration.
func BenchmarkServerRoundTrip(b *testing.B) {
	cases := []struct {
		name string
		args []string
	}{
		{"ping", []string{"PING"}},
		{"set", []string{"SET", "key", "value"}},
		{"get", []string{"GET", "key"}},
		{"rpush", []string{"RPUSH", "list", "item"}},
		{"lrange_10", []string{"LRANGE", "list", "0", "9"}},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			ctx := context.Background()
			client := dial(b, startServer(b))
			if _, err := client.DoArgs(ctx, "SET", "key", "value"); err != nil {
				b.Fatalf("SET failed: %v", err)
			}

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				reply, err := client.DoArgs(ctx, tc.args...)
				if err != nil {
					b.Fatalf("DoArgs failed: %v", err)
				}
				if _, isErr := reply.(resp.SimpleError); isErr {
					b.Fatalf("error reply: %v", reply)
				}
			}
		})
	}
}

// BenchmarkServerRoundTripWithMetrics measures the cost of recording
// per-command metrics.
func BenchmarkServerRoundTripWithMetrics(b *testing.B) {
	ctx := context.Background()
	client := dial(b, startServer(b, redisserver.WithMetrics(metric.NewRegistry())))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := client.DoArgs(ctx, "GET", "key"); err != nil {
			b.Fatalf("DoArgs failed: %v", err)
		}
	}
}

// BenchmarkServerPipelined benchmarks batches of pipelined SETs written in
// one go, with replies drained afterwards.
func BenchmarkServerPipelined(b *testing.B) {
	for _, depth := range []int{10, 100} {
		b.Run(fmt.Sprintf("depth_%d", depth), func(b *testing.B) {
			addr := startServer(b)
			nc, err := net.Dial("tcp", addr)
			if err != nil {
				b.Fatalf("Dial failed: %v", err)
			}
			b.Cleanup(func() { _ = nc.Close() })

			var batch []byte
			for i := 0; i < depth; i++ {
				batch = resp.Append(batch, resp.BulkStrings("SET", fmt.Sprintf("key-%d", i), "value"))
			}
			reply := resp.Encode(resp.BulkString("OK"))
			replies := make([]byte, len(reply)*depth)

			b.SetBytes(int64(len(batch)))
			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if _, err := nc.Write(batch); err != nil {
					b.Fatalf("Write failed: %v", err)
				}
				if _, err := io.ReadFull(nc, replies); err != nil {
					b.Fatalf("Read failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkServerParallelClients benchmarks many connections sharing one
// store.
func BenchmarkServerParallelClients(b *testing.B) {
	addr := startServer(b)

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		ctx := context.Background()
		client, err := connection.Dial(ctx, addr, 5*time.Second)
		if err != nil {
			b.Errorf("Dial failed: %v", err)
			return
		}
		defer client.Close()

		i := 0
		for pb.Next() {
			key := fmt.Sprintf("key-%d", i%1000)
			if i%4 == 0 {
				_, err = client.DoArgs(ctx, "SET", key, "value")
			} else {
				_, err = client.DoArgs(ctx, "GET", key)
			}
			if err != nil {
				b.Errorf("DoArgs failed: %v", err)
				return
			}
			i++
		}
	})
}
