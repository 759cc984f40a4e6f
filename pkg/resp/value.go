package resp

// Value is a single RESP value.
//
// The set of implementations is closed: SimpleString, BulkString,
// NullBulkString, SimpleError, Integer and Array.
type Value interface {
	respValue()
}

// SimpleString is a short status reply such as "OK" or "PONG".
type SimpleString string

// BulkString is a length-prefixed, binary-safe string.
type BulkString string

// NullBulkString is the "no value" reply ($-1).
type NullBulkString struct{}

// SimpleError is a single-line error reply.
type SimpleError string

// Integer is a signed 64-bit numeric reply.
type Integer int64

// Array is an ordered sequence of values. Command frames are arrays of
// bulk strings.
type Array []Value

func (SimpleString) respValue()   {}
func (BulkString) respValue()     {}
func (NullBulkString) respValue() {}
func (SimpleError) respValue()    {}
func (Integer) respValue()        {}
func (Array) respValue()          {}

// Null is the shared NullBulkString value.
var Null = NullBulkString{}

// BulkStrings builds an array of bulk strings, the shape of every request.
func BulkStrings(parts ...string) Array {
	arr := make(Array, len(parts))
	for i, p := range parts {
		arr[i] = BulkString(p)
	}
	return arr
}
