package decode

import (
	"fmt"
	"io"

	"github.com/openfit/fitwire/basetype"
	"github.com/openfit/fitwire/compress"
	"github.com/openfit/fitwire/endian"
	"github.com/openfit/fitwire/errs"
	"github.com/openfit/fitwire/internal/pool"
	"github.com/openfit/fitwire/profile"
	"github.com/openfit/fitwire/section"
)

const (
	// TimestampInvalid marks a message with no timestamp context.
	TimestampInvalid = ^uint32(0)
	// MessageIndexInvalid marks a message that carried no message index.
	MessageIndexInvalid = ^uint16(0)
)

// Message is one decoded data message, handed to the callback in stream
// order. The struct and its Fields slice are reused scratch only for the
// duration of the callback; a consumer that retains values copies them.
type Message struct {
	// GlobalMesgNum names the semantic message kind from the definition.
	GlobalMesgNum profile.MesgNum
	// LocalMesgType is the local slot the message decoded through.
	LocalMesgType uint8
	// Timestamp is the message's FIT timestamp: the absolute value carried
	// in the message, the reconstructed value for a compressed-timestamp
	// record, or the running value inherited from an earlier message.
	// TimestampInvalid when no timestamp context exists yet.
	Timestamp uint32
	// MessageIndex is the message's index field when present,
	// MessageIndexInvalid otherwise.
	MessageIndex uint16
	// Fields are the decoded field values in wire order. Timestamp and
	// message index fields are lifted into the envelope and do not appear
	// here.
	Fields []FieldValue
}

// Unix returns the message timestamp as Unix seconds and whether the
// message has one.
func (m *Message) Unix() (int64, bool) {
	if m.Timestamp == TimestampInvalid {
		return 0, false
	}

	return profile.UnixTime(m.Timestamp), true
}

// Field returns the first field with the given native field number.
func (m *Message) Field(num uint8) (*FieldValue, bool) {
	for i := range m.Fields {
		if !m.Fields[i].Developer && m.Fields[i].Num == num {
			return &m.Fields[i], true
		}
	}

	return nil, false
}

// Callback receives each decoded data message together with the opaque
// context the decoder was created with. Returning a non-nil error aborts
// the decode and propagates out of Decode.
type Callback[C any] func(msg *Message, ctx *C) error

// Decoder decodes one FIT stream, delivering data messages to a callback.
//
// A Decoder is single-use and not safe for concurrent use; decode distinct
// streams with distinct Decoders.
type Decoder[C any] struct {
	src  io.Reader
	r    *reader
	cb   Callback[C]
	ctx  *C
	opts options

	header    section.FileHeader
	defs      [section.MaxLocalMessageTypes]*section.MessageDefinition
	devFields *DevFieldRegistry

	lastTimestamp uint32
	hasTimestamp  bool
}

// NewDecoder creates a Decoder reading from r.
//
// Parameters:
//   - r: the FIT byte stream, starting at the file header
//   - cb: the per-message callback
//   - ctx: opaque context passed through to every callback invocation
//   - opts: optional behavior tweaks
func NewDecoder[C any](r io.Reader, cb Callback[C], ctx *C, opts ...Option) *Decoder[C] {
	d := &Decoder[C]{
		src:       r,
		cb:        cb,
		ctx:       ctx,
		devFields: newDevFieldRegistry(),
	}
	for _, opt := range opts {
		opt(&d.opts)
	}

	return d
}

// Header returns the parsed file header. Valid after Decode has returned,
// even on error, provided the header itself parsed.
func (d *Decoder[C]) Header() section.FileHeader { return d.header }

// DevFields returns the registry of developer field descriptions seen so
// far. Useful after Decode for name or application-id lookups.
func (d *Decoder[C]) DevFields() *DevFieldRegistry { return d.devFields }

// Decode runs the stream to completion: header, records, trailing CRC.
//
// The callback sees every data message that precedes a failure; an error in
// the trailing CRC therefore arrives after all messages were delivered, and
// the caller decides whether to keep them.
func (d *Decoder[C]) Decode() error {
	src := d.src
	if d.opts.transparentCompression {
		unwrapped, err := compress.NewReader(src)
		if err != nil {
			return fmt.Errorf("unwrap compression: %w", err)
		}
		src = unwrapped
	}
	d.r = &reader{src: src}

	if err := d.readFileHeader(); err != nil {
		return err
	}

	headerLen := d.r.count
	dataSize := uint64(d.header.DataSize)

	for d.r.count-headerLen < dataSize {
		if err := d.decodeRecord(); err != nil {
			return err
		}
		if consumed := d.r.count - headerLen; consumed > dataSize {
			return fmt.Errorf("%w: consumed %d of %d declared bytes",
				errs.ErrDataSizeMismatch, consumed, dataSize)
		}
	}

	return d.checkFileCRC()
}

func (d *Decoder[C]) readFileHeader() error {
	var buf [section.MaxFileHeaderSize]byte

	size, err := d.r.readByte()
	if err != nil {
		return err
	}
	if size != section.MinFileHeaderSize && size != section.MaxFileHeaderSize {
		return fmt.Errorf("%w: %d", errs.ErrInvalidHeaderSize, size)
	}

	buf[0] = size
	if err := d.r.readFull(buf[1:size]); err != nil {
		return err
	}

	if err := d.header.Parse(buf[:size]); err != nil {
		return err
	}
	if d.opts.strictHeaderCRC && size == section.MaxFileHeaderSize && d.header.CRC == 0 {
		return fmt.Errorf("%w: stored header CRC is zero", errs.ErrHeaderCRCMismatch)
	}

	return nil
}

func (d *Decoder[C]) decodeRecord() error {
	b, err := d.r.readByte()
	if err != nil {
		return err
	}

	hdr := section.RecordHeader(b)
	if err := hdr.Validate(); err != nil {
		return err
	}

	if hdr.IsDefinition() {
		return d.readDefinition(hdr)
	}

	return d.readData(hdr)
}

func (d *Decoder[C]) readDefinition(hdr section.RecordHeader) error {
	var fixed [section.DefinitionHeaderSize]byte
	if err := d.r.readFull(fixed[:]); err != nil {
		return err
	}

	def := &section.MessageDefinition{Architecture: fixed[1]}
	engine := def.Engine()
	def.GlobalMesgNum = profile.MesgNum(engine.Uint16(fixed[2:4]))

	numFields := int(fixed[4])
	if numFields > 0 {
		buf, release := pool.GetByteSlice(numFields * section.FieldDefSize)
		defer release()
		if err := d.r.readFull(buf); err != nil {
			return err
		}

		def.Fields = make([]section.FieldDef, numFields)
		for i := 0; i < numFields; i++ {
			f, err := section.ParseFieldDef(buf[i*section.FieldDefSize:])
			if err != nil {
				return err
			}
			def.Fields[i] = f
		}
	}

	if hdr.HasDeveloperData() {
		numDev, err := d.r.readByte()
		if err != nil {
			return err
		}
		if numDev > 0 {
			buf, release := pool.GetByteSlice(int(numDev) * section.DevFieldDefSize)
			defer release()
			if err := d.r.readFull(buf); err != nil {
				return err
			}

			def.DevFields = make([]section.DevFieldDef, numDev)
			for i := 0; i < int(numDev); i++ {
				f, err := section.ParseDevFieldDef(buf[i*section.DevFieldDefSize:])
				if err != nil {
					return err
				}
				def.DevFields[i] = f
			}
		}
	}

	d.defs[hdr.LocalMessageType()] = def

	return nil
}

func (d *Decoder[C]) readData(hdr section.RecordHeader) error {
	local := hdr.LocalMessageType()
	def := d.defs[local]
	if def == nil {
		return fmt.Errorf("%w: local type %d", errs.ErrUnknownLocalMessage, local)
	}
	engine := def.Engine()

	msg := Message{
		GlobalMesgNum: def.GlobalMesgNum,
		LocalMesgType: local,
		Timestamp:     TimestampInvalid,
		MessageIndex:  MessageIndexInvalid,
	}

	if hdr.IsCompressedTimestamp() {
		if !d.hasTimestamp {
			return fmt.Errorf("%w: compressed timestamp before any absolute timestamp",
				errs.ErrMissingTimestampRef)
		}
		d.lastTimestamp = rolloverTimestamp(d.lastTimestamp, hdr.TimeOffset())
		msg.Timestamp = d.lastTimestamp
	} else if d.hasTimestamp {
		msg.Timestamp = d.lastTimestamp
	}

	body, release := pool.GetByteSlice(def.DataSize())
	defer release()
	if err := d.r.readFull(body); err != nil {
		return err
	}

	fields := make([]FieldValue, 0, len(def.Fields)+len(def.DevFields))
	off := 0

	for _, f := range def.Fields {
		raw := body[off : off+int(f.Size)]
		off += int(f.Size)

		switch {
		case f.Num == profile.FieldNumTimestamp && f.Size == 4:
			if bits := engine.Uint32(raw); uint64(bits) != basetype.UInt32.Invalid() {
				d.lastTimestamp = bits
				d.hasTimestamp = true
				msg.Timestamp = bits
			}
			continue
		case f.Num == profile.FieldNumMessageIndex && f.Size == 2:
			msg.MessageIndex = engine.Uint16(raw)
			continue
		}

		if d.opts.strictBaseTypes && !f.BaseType.Known() {
			return fmt.Errorf("%w: 0x%02X (field %d in message %s)",
				errs.ErrUnsupportedBaseType, uint8(f.BaseType), f.Num, def.GlobalMesgNum)
		}

		fields = append(fields, decodeField(f, raw, engine))
	}

	for _, df := range def.DevFields {
		raw := body[off : off+int(df.Size)]
		off += int(df.Size)

		v, err := d.decodeDevField(df, raw, engine)
		if err != nil {
			return err
		}
		fields = append(fields, v)
	}

	msg.Fields = fields

	// Field descriptions and developer data ids fold into the registry
	// before the callback returns, so the very next data message can
	// already resolve against them.
	switch def.GlobalMesgNum {
	case profile.MesgNumFieldDescription:
		d.devFields.addFieldDescription(fields)
	case profile.MesgNumDeveloperDataID:
		d.devFields.addDeveloperDataID(fields)
	}

	if err := d.cb(&msg, d.ctx); err != nil {
		return fmt.Errorf("callback: %w", err)
	}

	return nil
}

func (d *Decoder[C]) decodeDevField(df section.DevFieldDef, raw []byte, engine endian.EndianEngine) (FieldValue, error) {
	meta, ok := d.devFields.Lookup(df.DevDataIndex, df.Num)
	if !ok {
		if d.opts.strictDevFields {
			return FieldValue{}, fmt.Errorf("%w: developer data index %d, field %d",
				errs.ErrUnresolvedDeveloperField, df.DevDataIndex, df.Num)
		}

		// No field description seen: surface the bytes opaquely so the
		// stream keeps decoding.
		v := opaqueFallback(section.FieldDef{Num: df.Num, Size: df.Size}, raw)
		v.Developer = true
		v.DevDataIndex = df.DevDataIndex

		return v, nil
	}

	v := decodeField(section.FieldDef{Num: df.Num, Size: df.Size, BaseType: meta.BaseType}, raw, engine)
	v.Developer = true
	v.DevDataIndex = df.DevDataIndex
	v.Name = meta.Name

	return v, nil
}

// rolloverTimestamp reconstructs an absolute timestamp from a 5-bit offset
// against the running timestamp. An offset numerically below the reference's
// low 5 bits means the 5-bit counter wrapped, advancing the next 32-second
// window.
func rolloverTimestamp(last uint32, offset uint8) uint32 {
	off := uint32(offset & 0x1F)
	if off >= last&0x1F {
		return (last &^ 0x1F) | off
	}

	return (last &^ 0x1F) + off + 0x20
}

func (d *Decoder[C]) checkFileCRC() error {
	computed := d.r.crc

	var tail [2]byte
	if err := d.r.readRaw(tail[:]); err != nil {
		return err
	}

	stored := uint16(tail[0]) | uint16(tail[1])<<8
	if stored != computed {
		return fmt.Errorf("%w: stored 0x%04X, computed 0x%04X",
			errs.ErrFileCRCMismatch, stored, computed)
	}

	return nil
}
