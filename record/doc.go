// Package record composes wire primitives into multi-field records.
//
// A record is an ordered list of fields. Field order is part of the wire
// contract: the decoder and the encoder must visit fields in the same fixed
// order, and no field may be skipped.
//
// # Static Records
//
// Hand-written or generated record types use Reader and Writer, which carry a
// single cursor through the fields and stop at the first failure:
//
//	func DecodeUser(buf []byte, off int) (User, int, error) {
//	    r := record.NewReader(buf, off)
//	    var u User
//	    u.Name = r.String("name")
//	    u.Age = r.Int8("age")
//	    u.Tags = record.ReadArray(r, "tags", wire.ReadString)
//	    if err := r.Err(); err != nil {
//	        return User{}, off, err
//	    }
//
//	    return u, r.Offset(), nil
//	}
//
//	func (u User) Encode(sink wire.Sink) (int, error) {
//	    w := record.NewWriter(sink)
//	    w.String("name", u.Name)
//	    w.Int8("age", u.Age)
//	    record.PutArray(w, "tags", u.Tags, wire.WriteString)
//
//	    return w.Result()
//	}
//
// Decoding is all-or-nothing: on failure the caller receives the zero record
// and its original offset. Encode, Marshal and Unmarshal extend the same
// guarantee to the encode side by staging bytes in a scratch buffer.
//
// # Dynamic Records
//
// Schema, Value and Record describe and carry records whose layout is only
// known at run time. They share the primitive codec with static records, so
// a Schema that lists the same fields as a static type produces the same bytes.
package record
