package types

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math/big"

	collcodec "cosmossdk.io/collections/codec"
	sdkmath "cosmossdk.io/math"
)

var (
	// ProposalValue is the store codec for Proposal records.
	ProposalValue collcodec.ValueCodec[Proposal] = proposalValueCodec{}

	// AmountValue is the store codec for unsigned amounts.
	AmountValue collcodec.ValueCodec[sdkmath.Uint] = amountValueCodec{}
)

// proposalValueCodec writes the fields in declaration order:
// uvarint id, proposer, title, description as uvarint-length-prefixed bytes,
// uvarint votes and voter_count, the contribution amount as a
// uvarint-length-prefixed big-endian magnitude, and one status byte.
type proposalValueCodec struct{}

func (proposalValueCodec) Encode(p Proposal) ([]byte, error) {
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("cannot encode proposal %d: unknown status %d", p.Id, p.Status)
	}
	amount := encodeAmount(p.Contributions)

	buf := make([]byte, 0, 4*binary.MaxVarintLen64+len(p.Proposer)+len(p.Title)+len(p.Description)+len(amount)+16)
	buf = binary.AppendUvarint(buf, p.Id)
	buf = appendBytes(buf, []byte(p.Proposer))
	buf = appendBytes(buf, []byte(p.Title))
	buf = appendBytes(buf, []byte(p.Description))
	buf = binary.AppendUvarint(buf, p.Votes)
	buf = binary.AppendUvarint(buf, p.VoterCount)
	buf = appendBytes(buf, amount)
	buf = append(buf, byte(p.Status))
	return buf, nil
}

func (proposalValueCodec) Decode(bz []byte) (Proposal, error) {
	r := reader{buf: bz}

	var p Proposal
	p.Id = r.uvarint("id")
	p.Proposer = string(r.bytes("proposer"))
	p.Title = string(r.bytes("title"))
	p.Description = string(r.bytes("description"))
	p.Votes = r.uvarint("votes")
	p.VoterCount = r.uvarint("voter_count")
	amount := r.bytes("contributions")
	status := r.single("status")
	if r.err != nil {
		return Proposal{}, r.err
	}
	if len(r.buf) != 0 {
		return Proposal{}, fmt.Errorf("proposal %d: %d trailing bytes", p.Id, len(r.buf))
	}

	contributions, err := decodeAmount(amount)
	if err != nil {
		return Proposal{}, fmt.Errorf("proposal %d: %w", p.Id, err)
	}
	p.Contributions = contributions

	p.Status = ProposalStatus(status)
	if !p.Status.IsValid() {
		return Proposal{}, fmt.Errorf("proposal %d: unknown status %d", p.Id, status)
	}
	return p, nil
}

func (proposalValueCodec) EncodeJSON(p Proposal) ([]byte, error) {
	return json.Marshal(p)
}

func (proposalValueCodec) DecodeJSON(bz []byte) (Proposal, error) {
	var p Proposal
	if err := json.Unmarshal(bz, &p); err != nil {
		return Proposal{}, err
	}
	if p.Contributions.IsNil() {
		p.Contributions = sdkmath.ZeroUint()
	}
	return p, nil
}

func (proposalValueCodec) Stringify(p Proposal) string {
	return p.String()
}

func (proposalValueCodec) ValueType() string {
	return ModuleName + ".Proposal"
}

type amountValueCodec struct{}

func (amountValueCodec) Encode(u sdkmath.Uint) ([]byte, error) {
	return encodeAmount(u), nil
}

func (amountValueCodec) Decode(bz []byte) (sdkmath.Uint, error) {
	return decodeAmount(bz)
}

func (amountValueCodec) EncodeJSON(u sdkmath.Uint) ([]byte, error) {
	return u.MarshalJSON()
}

func (amountValueCodec) DecodeJSON(bz []byte) (sdkmath.Uint, error) {
	u := sdkmath.ZeroUint()
	if err := u.UnmarshalJSON(bz); err != nil {
		return sdkmath.Uint{}, err
	}
	return u, nil
}

func (amountValueCodec) Stringify(u sdkmath.Uint) string {
	return u.String()
}

func (amountValueCodec) ValueType() string {
	return "math.Uint"
}

func encodeAmount(u sdkmath.Uint) []byte {
	if u.IsNil() {
		return nil
	}
	return u.BigInt().Bytes()
}

func decodeAmount(bz []byte) (sdkmath.Uint, error) {
	i := new(big.Int).SetBytes(bz)
	if i.BitLen() > MaxAmountBits {
		return sdkmath.Uint{}, fmt.Errorf("amount exceeds %d bits", MaxAmountBits)
	}
	return sdkmath.NewUintFromBigInt(i), nil
}

func appendBytes(buf, b []byte) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(b)))
	return append(buf, b...)
}

// reader consumes a buffer field by field and keeps the first error.
type reader struct {
	buf []byte
	err error
}

func (r *reader) uvarint(field string) uint64 {
	if r.err != nil {
		return 0
	}
	v, n := binary.Uvarint(r.buf)
	if n <= 0 {
		r.err = fmt.Errorf("malformed %s", field)
		return 0
	}
	r.buf = r.buf[n:]
	return v
}

func (r *reader) bytes(field string) []byte {
	size := r.uvarint(field)
	if r.err != nil {
		return nil
	}
	if uint64(len(r.buf)) < size {
		r.err = fmt.Errorf("truncated %s: want %d bytes, have %d", field, size, len(r.buf))
		return nil
	}
	b := r.buf[:size]
	r.buf = r.buf[size:]
	return b
}

func (r *reader) single(field string) byte {
	if r.err != nil {
		return 0
	}
	if len(r.buf) == 0 {
		r.err = fmt.Errorf("missing %s", field)
		return 0
	}
	b := r.buf[0]
	r.buf = r.buf[1:]
	return b
}
