package puzzle

import (
	"context"
	"strings"

	"github.com/katalvlaran/sudoku/generate"
	"github.com/katalvlaran/sudoku/solve"
)

// ID names a puzzle by the two values that regenerate it: the target
// tier and the generator seed.
type ID struct {
	Tier solve.Tier
	Seed int64
}

// codeSeedBits is the seed width carried by a share code: 7 base-32
// characters of 5 bits each.
const codeSeedBits = 35

// maxCodeSeed is the first seed that no longer fits a code.
const maxCodeSeed = int64(1) << codeSeedBits

// tierLetters maps each tier to its code letter.
var tierLetters = [...]byte{'B', 'E', 'M', 'I', 'H', 'X', 'S', 'Z'}

// codeAlphabet is the Crockford base-32 alphabet: no I, L, O or U, so
// codes survive handwriting.
const codeAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// EncodeID renders an ID as its 8-character share code.
func EncodeID(id ID) (string, error) {
	if int(id.Tier) >= len(tierLetters) {
		return "", ErrInvalidCode
	}
	// Seed zero is reserved: the generator reads it as "pick one".
	if id.Seed <= 0 || id.Seed >= maxCodeSeed {
		return "", ErrInvalidSeed
	}
	var buf [8]byte
	buf[0] = tierLetters[id.Tier]
	seed := uint64(id.Seed)
	for i := 7; i >= 1; i-- {
		buf[i] = codeAlphabet[seed&31]
		seed >>= 5
	}
	return string(buf[:]), nil
}

// DecodeID parses a share code back into its ID. Lowercase input is
// accepted.
func DecodeID(code string) (ID, error) {
	code = strings.ToUpper(code)
	if len(code) != 8 {
		return ID{}, ErrInvalidCode
	}
	var id ID
	found := false
	for t, letter := range tierLetters {
		if code[0] == letter {
			id.Tier = solve.Tier(t)
			found = true
			break
		}
	}
	if !found {
		return ID{}, ErrInvalidCode
	}
	var seed uint64
	for i := 1; i < 8; i++ {
		v := strings.IndexByte(codeAlphabet, code[i])
		if v < 0 {
			return ID{}, ErrInvalidCode
		}
		seed = seed<<5 | uint64(v)
	}
	if seed == 0 {
		return ID{}, ErrInvalidCode
	}
	id.Seed = int64(seed)
	return id, nil
}

// Regenerate rebuilds the exact puzzle behind an ID and wraps it into
// a fresh instance.
func Regenerate(ctx context.Context, id ID) (*Instance, error) {
	if id.Seed <= 0 || id.Seed >= maxCodeSeed {
		return nil, ErrInvalidSeed
	}
	opts := generate.DefaultOptions(id.Tier)
	opts.Seed = id.Seed
	p, err := generate.Generate(ctx, opts)
	if err != nil {
		return nil, err
	}
	inst := NewInstance(p)
	if code, err := EncodeID(id); err == nil {
		inst.Code = code
	}
	return inst, nil
}
