/*
 * Copyright 2024 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package codec

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/apache/thrift/lib/go/thrift"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudwego/quadopt/internal/quad"
)

func sampleTable(t *testing.T) *quad.Table {
	tab := quad.NewTable(20, 9)
	require.NoError(t, tab.Append(quad.Quad{Op: "+", Arg1: "2", Arg2: "3", Res: "t1"}))
	require.NoError(t, tab.Append(quad.Quad{Op: "=", Arg1: "t1", Arg2: "-", Res: "t2"}))
	require.NoError(t, tab.Append(quad.Quad{Op: "*", Arg1: "t2", Arg2: "4", Res: "t3"}))
	return tab
}

func TestCodec_RoundTrip(t *testing.T) {
	src := sampleTable(t)
	buf, err := Encode(src)
	require.NoError(t, err)
	require.Equal(t, EncodedSize(src), len(buf))
	spew.Dump(buf)

	dst := quad.NewTable(20, 9)
	require.NoError(t, Decode(buf, dst))
	assert.Equal(t, src.Quads(), dst.Quads())
}

func TestCodec_EmptyTable(t *testing.T) {
	buf, err := Encode(quad.NewTable(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 9, len(buf))

	dst := quad.NewTable(20, 9)
	require.NoError(t, Decode(buf, dst))
	assert.Zero(t, dst.Len())
}

func TestCodec_SkipUnknownFields(t *testing.T) {
	mem := thrift.NewTMemoryBuffer()
	p := thrift.NewTBinaryProtocolTransport(mem)
	require.NoError(t, p.WriteStructBegin("QuadTable"))
	require.NoError(t, p.WriteFieldBegin("version", thrift.I32, 2))
	require.NoError(t, p.WriteI32(7))
	require.NoError(t, p.WriteFieldEnd())
	require.NoError(t, p.WriteFieldBegin("quads", thrift.LIST, 1))
	require.NoError(t, p.WriteListBegin(thrift.STRUCT, 1))
	require.NoError(t, p.WriteStructBegin("Quad"))
	for i, v := range []string{"/", "10", "0", "r"} {
		require.NoError(t, p.WriteFieldBegin("", thrift.STRING, int16(i+1)))
		require.NoError(t, p.WriteString(v))
		require.NoError(t, p.WriteFieldEnd())
	}
	require.NoError(t, p.WriteFieldBegin("line", thrift.I64, 9))
	require.NoError(t, p.WriteI64(42))
	require.NoError(t, p.WriteFieldEnd())
	require.NoError(t, p.WriteFieldBegin("attrs", thrift.MAP, 10))
	require.NoError(t, p.WriteMapBegin(thrift.STRING, thrift.LIST, 1))
	require.NoError(t, p.WriteString("k"))
	require.NoError(t, p.WriteListBegin(thrift.I32, 2))
	require.NoError(t, p.WriteI32(1))
	require.NoError(t, p.WriteI32(2))
	require.NoError(t, p.WriteListEnd())
	require.NoError(t, p.WriteMapEnd())
	require.NoError(t, p.WriteFieldEnd())
	require.NoError(t, p.WriteFieldBegin("tags", thrift.SET, 11))
	require.NoError(t, p.WriteSetBegin(thrift.BYTE, 2))
	require.NoError(t, p.WriteByte(1))
	require.NoError(t, p.WriteByte(2))
	require.NoError(t, p.WriteSetEnd())
	require.NoError(t, p.WriteFieldEnd())
	require.NoError(t, p.WriteFieldStop())
	require.NoError(t, p.WriteStructEnd())
	require.NoError(t, p.WriteListEnd())
	require.NoError(t, p.WriteFieldEnd())
	require.NoError(t, p.WriteFieldStop())
	require.NoError(t, p.WriteStructEnd())
	require.NoError(t, p.Flush(context.Background()))

	dst := quad.NewTable(20, 9)
	require.NoError(t, Decode(mem.Bytes(), dst))
	assert.Equal(t, []quad.Quad{{Op: "/", Arg1: "10", Arg2: "0", Res: "r"}}, dst.Quads())
}

func TestCodec_Errors(t *testing.T) {
	buf, err := Encode(sampleTable(t))
	require.NoError(t, err)

	/* the capacity is checked before decoding */
	small := quad.NewTable(2, 9)
	err = Decode(buf, small)
	var ce quad.CapacityError
	require.True(t, errors.As(err, &ce), "got %v", err)
	assert.Equal(t, 3, ce.Count)
	assert.Zero(t, small.Len())

	/* token limits still apply */
	err = Decode(buf, quad.NewTable(20, 1))
	var te quad.TokenError
	require.True(t, errors.As(err, &te), "got %v", err)

	/* truncated input */
	require.Error(t, Decode(buf[:len(buf)-4], quad.NewTable(20, 9)))
	require.Error(t, Decode(nil, quad.NewTable(20, 9)))
}

func TestCodec_WrongElementType(t *testing.T) {
	mem := thrift.NewTMemoryBuffer()
	p := thrift.NewTBinaryProtocolTransport(mem)
	require.NoError(t, p.WriteStructBegin("QuadTable"))
	require.NoError(t, p.WriteFieldBegin("quads", thrift.LIST, 1))
	require.NoError(t, p.WriteListBegin(thrift.STRING, 1))
	require.NoError(t, p.WriteString("+"))
	require.NoError(t, p.WriteListEnd())
	require.NoError(t, p.WriteFieldEnd())
	require.NoError(t, p.WriteFieldStop())
	require.NoError(t, p.WriteStructEnd())

	err := Decode(mem.Bytes(), quad.NewTable(20, 9))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected list<struct>")
}

func TestCodec_SkipMalformed(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		kind int
	}{
		{name: "huge list of structs", buf: mustHex(t, "0f00cb0c7d000002"), kind: thrift.SIZE_LIMIT},
		{name: "huge map", buf: mustHex(t, "0d00cb0b0b7fffffff"), kind: thrift.SIZE_LIMIT},
		{name: "huge set in a quad", buf: mustHex(t, "0f00010c000000010e00070800100000"), kind: thrift.SIZE_LIMIT},
		{name: "deeply nested structs", buf: bytes.Repeat([]byte{0x0c, 0x00, 0x02}, 100), kind: thrift.DEPTH_LIMIT},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			err := Decode(tt.buf, quad.NewTable(0, 0))
			assert.Less(t, time.Since(start), time.Second)

			var pe thrift.TProtocolException
			require.True(t, errors.As(err, &pe), "got %v", err)
			assert.Equal(t, tt.kind, pe.TypeId(), "got %v", err)
		})
	}
}

func TestCodec_SkipTruncatedStruct(t *testing.T) {
	/* unknown struct field 2 whose body ends before its STOP marker */
	err := Decode(mustHex(t, "0c0002080001"), quad.NewTable(20, 9))
	require.Error(t, err)
}

func mustHex(t *testing.T, s string) []byte {
	buf, err := hex.DecodeString(s)
	require.NoError(t, err)
	return buf
}
