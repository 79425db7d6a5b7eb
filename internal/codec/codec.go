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

// Package codec encodes quadruple tables with the Thrift Binary Protocol,
// using the following IDL:
//
//     struct Quad {
//         1: string op
//         2: string arg1
//         3: string arg2
//         4: string result
//     }
//
//     struct QuadTable {
//         1: list<Quad> quads
//     }
package codec

import (
    `bytes`
    `context`
    `fmt`

    `github.com/apache/thrift/lib/go/thrift`
    `github.com/bytedance/gopkg/lang/dirtmake`

    `github.com/cloudwego/quadopt/internal/quad`
)

const (
    _SizeFieldHeader = 3    // type byte + field id
    _SizeListHeader  = 5    // element type byte + size
    _SizeString      = 4    // length prefix
    _SizeStop        = 1
)

// EncodedSize returns the exact size of tab in Thrift Binary Protocol.
func EncodedSize(tab *quad.Table) int {
    n := _SizeFieldHeader + _SizeListHeader + _SizeStop
    for _, q := range tab.Quads() {
        n += quadSize(q)
    }
    return n
}

func quadSize(q quad.Quad) int {
    return 4 * (_SizeFieldHeader + _SizeString) + len(q.Op) + len(q.Arg1) + len(q.Arg2) + len(q.Res) + _SizeStop
}

// Encode serializes tab into a freshly allocated buffer.
func Encode(tab *quad.Table) ([]byte, error) {
    mem := &thrift.TMemoryBuffer { Buffer: bytes.NewBuffer(dirtmake.Bytes(0, EncodedSize(tab))) }
    out := thrift.NewTBinaryProtocolTransport(mem)

    /* serialize the table */
    if err := writeTable(out, tab); err != nil {
        return nil, err
    } else if err = out.Flush(context.Background()); err != nil {
        return nil, err
    } else {
        return mem.Bytes(), nil
    }
}

// Decode deserializes buf and appends the quadruples to tab. Unknown fields
// are skipped, the list size is checked against the capacity of tab before
// any quadruple is decoded.
func Decode(buf []byte, tab *quad.Table) error {
    mem := &thrift.TMemoryBuffer { Buffer: bytes.NewBuffer(buf) }
    return _Reader { p: thrift.NewTBinaryProtocolTransport(mem), mem: mem }.readTable(tab)
}

func writeTable(p thrift.TProtocol, tab *quad.Table) error {
    if err := p.WriteStructBegin("QuadTable"); err != nil {
        return thrift.PrependError("QuadTable write struct begin error: ", err)
    }

    /* field 1: quads */
    if err := p.WriteFieldBegin("quads", thrift.LIST, 1); err != nil {
        return thrift.PrependError("write field begin error 1:quads: ", err)
    } else if err = p.WriteListBegin(thrift.STRUCT, tab.Len()); err != nil {
        return thrift.PrependError("error writing list begin: ", err)
    }

    /* every list element */
    for _, q := range tab.Quads() {
        if err := writeQuad(p, q); err != nil {
            return err
        }
    }

    /* close the list and the struct */
    if err := p.WriteListEnd(); err != nil {
        return thrift.PrependError("error writing list end: ", err)
    } else if err = p.WriteFieldEnd(); err != nil {
        return thrift.PrependError("write field end error 1:quads: ", err)
    } else if err = p.WriteFieldStop(); err != nil {
        return thrift.PrependError("write field stop error: ", err)
    } else if err = p.WriteStructEnd(); err != nil {
        return thrift.PrependError("write struct stop error: ", err)
    } else {
        return nil
    }
}

func writeQuad(p thrift.TProtocol, q quad.Quad) error {
    if err := p.WriteStructBegin("Quad"); err != nil {
        return thrift.PrependError("Quad write struct begin error: ", err)
    }

    /* all 4 fields are strings */
    for i, v := range [...]string { q.Op, q.Arg1, q.Arg2, q.Res } {
        if err := writeString(p, _QuadFields[i], int16(i + 1), v); err != nil {
            return err
        }
    }

    /* end of struct */
    if err := p.WriteFieldStop(); err != nil {
        return thrift.PrependError("write field stop error: ", err)
    } else if err = p.WriteStructEnd(); err != nil {
        return thrift.PrependError("write struct stop error: ", err)
    } else {
        return nil
    }
}

var _QuadFields = [...]string { "op", "arg1", "arg2", "result" }

func writeString(p thrift.TProtocol, name string, id int16, v string) error {
    if err := p.WriteFieldBegin(name, thrift.STRING, id); err != nil {
        return thrift.PrependError(fmt.Sprintf("write field begin error %d:%s: ", id, name), err)
    } else if err = p.WriteString(v); err != nil {
        return thrift.PrependError(fmt.Sprintf("%T.%s (%d) field write error: ", v, name, id), err)
    } else if err = p.WriteFieldEnd(); err != nil {
        return thrift.PrependError(fmt.Sprintf("write field end error %d:%s: ", id, name), err)
    } else {
        return nil
    }
}

const (
    _MaxSkipDepth = 32
)

type _Reader struct {
    p   thrift.TProtocol
    mem *thrift.TMemoryBuffer
}

// checkSize rejects a container header announcing more elements than there
// are bytes left, every element takes at least one byte on the wire.
func (self _Reader) checkSize(size int) error {
    if size < 0 {
        return thrift.NewTProtocolExceptionWithType(thrift.NEGATIVE_SIZE, fmt.Errorf("negative container size %d", size))
    } else if uint64(size) > self.mem.RemainingBytes() {
        return thrift.NewTProtocolExceptionWithType(thrift.SIZE_LIMIT, fmt.Errorf("container size %d exceeds the %d remaining bytes", size, self.mem.RemainingBytes()))
    } else {
        return nil
    }
}

func (self _Reader) readTable(tab *quad.Table) error {
    if _, err := self.p.ReadStructBegin(); err != nil {
        return thrift.PrependError("QuadTable read error: ", err)
    }

    /* read every field */
    for {
        _, tt, id, err := self.p.ReadFieldBegin()
        if err != nil {
            return thrift.PrependError("QuadTable field read error: ", err)
        }

        /* end of struct */
        if tt == thrift.STOP {
            break
        }

        /* only field 1 is known */
        if id == 1 && tt == thrift.LIST {
            err = self.readQuads(tab)
        } else {
            err = self.skip(tt, 0)
        }

        /* check for errors */
        if err != nil {
            return err
        } else if err = self.p.ReadFieldEnd(); err != nil {
            return err
        }
    }

    /* end of struct */
    if err := self.p.ReadStructEnd(); err != nil {
        return thrift.PrependError("QuadTable read struct end error: ", err)
    } else {
        return nil
    }
}

func (self _Reader) readQuads(tab *quad.Table) error {
    et, size, err := self.p.ReadListBegin()
    if err != nil {
        return thrift.PrependError("error reading list begin: ", err)
    }

    /* element type must be struct */
    if et != thrift.STRUCT {
        return thrift.NewTProtocolExceptionWithType(thrift.INVALID_DATA, fmt.Errorf("quads: expected list<struct>, got list<%s>", et))
    }

    /* reject oversized tables before decoding anything */
    if err = tab.Reserve(size); err != nil {
        return err
    } else if err = self.checkSize(size); err != nil {
        return thrift.PrependError("quads: ", err)
    }

    /* decode every element */
    for i := 0; i < size; i++ {
        var q quad.Quad
        if q, err = self.readQuad(); err != nil {
            return err
        } else if err = tab.Append(q); err != nil {
            return err
        }
    }

    /* end of list */
    if err = self.p.ReadListEnd(); err != nil {
        return thrift.PrependError("error reading list end: ", err)
    } else {
        return nil
    }
}

func (self _Reader) readQuad() (q quad.Quad, err error) {
    if _, err = self.p.ReadStructBegin(); err != nil {
        return q, thrift.PrependError("Quad read error: ", err)
    }

    /* field slots, indexed by field id */
    fv := [...]*string { &q.Op, &q.Arg1, &q.Arg2, &q.Res }

    /* read every field */
    for {
        var tt thrift.TType
        var id int16

        /* read the field header */
        if _, tt, id, err = self.p.ReadFieldBegin(); err != nil {
            return q, thrift.PrependError("Quad field read error: ", err)
        } else if tt == thrift.STOP {
            break
        }

        /* known string field or skip it */
        if id >= 1 && int(id) <= len(fv) && tt == thrift.STRING {
            *fv[id - 1], err = self.p.ReadString()
        } else {
            err = self.skip(tt, 1)
        }

        /* check for errors */
        if err != nil {
            return q, thrift.PrependError(fmt.Sprintf("Quad field %d read error: ", id), err)
        } else if err = self.p.ReadFieldEnd(); err != nil {
            return q, err
        }
    }

    /* end of struct */
    if err = self.p.ReadStructEnd(); err != nil {
        return q, thrift.PrependError("Quad read struct end error: ", err)
    } else {
        return q, nil
    }
}

// skip discards a value of type tt. Unlike TProtocol.Skip it stops at the
// first read error, and it bounds both the nesting depth and every
// container size by the remaining input.
func (self _Reader) skip(tt thrift.TType, depth int) error {
    if depth >= _MaxSkipDepth {
        return thrift.NewTProtocolExceptionWithType(thrift.DEPTH_LIMIT, fmt.Errorf("nesting deeper than %d", _MaxSkipDepth))
    }

    /* scalars are skipped by the protocol itself */
    switch tt {
        case thrift.STRUCT : return self.skipStruct(depth)
        case thrift.LIST   : return self.skipList(depth)
        case thrift.SET    : return self.skipSet(depth)
        case thrift.MAP    : return self.skipMap(depth)
        default            : return self.p.Skip(tt)
    }
}

func (self _Reader) skipStruct(depth int) error {
    if _, err := self.p.ReadStructBegin(); err != nil {
        return err
    }

    /* skip every field up to the STOP marker */
    for {
        _, tt, _, err := self.p.ReadFieldBegin()
        if err != nil {
            return err
        } else if tt == thrift.STOP {
            break
        } else if err = self.skip(tt, depth + 1); err != nil {
            return err
        } else if err = self.p.ReadFieldEnd(); err != nil {
            return err
        }
    }
    return self.p.ReadStructEnd()
}

func (self _Reader) skipList(depth int) error {
    et, size, err := self.p.ReadListBegin()
    if err != nil {
        return err
    } else if err = self.skipElems(size, depth, et); err != nil {
        return err
    } else {
        return self.p.ReadListEnd()
    }
}

func (self _Reader) skipSet(depth int) error {
    et, size, err := self.p.ReadSetBegin()
    if err != nil {
        return err
    } else if err = self.skipElems(size, depth, et); err != nil {
        return err
    } else {
        return self.p.ReadSetEnd()
    }
}

func (self _Reader) skipMap(depth int) error {
    kt, vt, size, err := self.p.ReadMapBegin()
    if err != nil {
        return err
    } else if err = self.skipElems(size, depth, kt, vt); err != nil {
        return err
    } else {
        return self.p.ReadMapEnd()
    }
}

func (self _Reader) skipElems(size int, depth int, types ...thrift.TType) error {
    if err := self.checkSize(size); err != nil {
        return err
    }

    /* skip every element, map entries are key then value */
    for i := 0; i < size; i++ {
        for _, tt := range types {
            if err := self.skip(tt, depth + 1); err != nil {
                return err
            }
        }
    }
    return nil
}
