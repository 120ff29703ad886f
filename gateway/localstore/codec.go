package localstore

import (
	"time"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

// codec serializes local-store documents. Timestamp fields are stored as
// (seconds, nanoseconds) pairs so local records stay convertible to the
// remote store's timestamp representation.
var codec = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	jsoniter.RegisterTypeEncoderFunc("time.Time", encodeTimestamp, timestampIsEmpty)
	jsoniter.RegisterTypeDecoderFunc("time.Time", decodeTimestamp)
}

func encodeTimestamp(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	t := *((*time.Time)(ptr))

	stream.WriteObjectStart()
	stream.WriteObjectField("seconds")
	stream.WriteInt64(t.Unix())
	stream.WriteMore()
	stream.WriteObjectField("nanoseconds")
	stream.WriteInt(t.Nanosecond())
	stream.WriteObjectEnd()
}

func timestampIsEmpty(ptr unsafe.Pointer) bool {
	return false
}

func decodeTimestamp(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	var ts struct {
		Seconds     int64 `json:"seconds"`
		Nanoseconds int64 `json:"nanoseconds"`
	}

	iter.ReadVal(&ts)

	*((*time.Time)(ptr)) = time.Unix(ts.Seconds, ts.Nanoseconds).UTC()
}
