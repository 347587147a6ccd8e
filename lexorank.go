package orderkey

import (
	"fmt"
	"strconv"
	"strings"
)

// Bucket represents a logical grouping or namespace for lexoranks.
// It's implemented as a uint8, allowing for up to 256 different buckets.
// Buckets are useful for organizing related items or implementing
// multi-tenant systems where different tenants need separate ordering.
type Bucket uint8

// Lexorank represents a lexicographically sortable rank within a bucket.
// It combines a bucket identifier with an order key, so ranks sort by bucket
// first and by key within a bucket.
type Lexorank struct {
	bucket Bucket // The bucket/namespace this rank belongs to
	key    string // The order key within the bucket
}

// String returns a string representation of the Lexorank in the format "bucket|key".
//
// Example: "1|a1" represents bucket 1 with key "a1"
func (rk Lexorank) String() string {
	return fmt.Sprintf("%d|%s", rk.bucket, rk.key)
}

// NewLexorank creates a new Lexorank with the specified bucket and key.
// The key is not validated; use ParseLexorank for untrusted input.
func NewLexorank(bucket Bucket, key string) Lexorank {
	return Lexorank{bucket: bucket, key: key}
}

// ParseLexorank parses the "bucket|key" form produced by String and
// validates the key against Base62.
func ParseLexorank(s string) (Lexorank, error) {
	bs, key, ok := strings.Cut(s, "|")
	if !ok {
		return Lexorank{}, newError(ErrInvalidRank, "invalid lexorank: %s", s)
	}
	b, err := strconv.ParseUint(bs, 10, 8)
	if err != nil {
		return Lexorank{}, newError(ErrInvalidRank, "invalid lexorank bucket: %s", s)
	}
	if err := ValidateKey(key); err != nil {
		return Lexorank{}, err
	}
	return Lexorank{bucket: Bucket(b), key: key}, nil
}

// Bucket returns the bucket identifier for this lexorank.
func (rk Lexorank) Bucket() Bucket {
	return rk.bucket
}

// Key returns the order key for this lexorank.
func (rk Lexorank) Key() string {
	return rk.key
}

// Compare orders two ranks by bucket, then by key. It returns -1, 0 or 1.
func (rk Lexorank) Compare(other Lexorank) int {
	switch {
	case rk.bucket < other.bucket:
		return -1
	case rk.bucket > other.bucket:
		return 1
	}
	return strings.Compare(rk.key, other.key)
}

// RankBetween returns a rank in bucket that sorts between a and b. A nil
// bound is open. Bounds from a bucket other than bucket are rejected.
func RankBetween(bucket Bucket, a, b *Lexorank) (Lexorank, error) {
	ka, kb, err := rankBounds(bucket, a, b)
	if err != nil {
		return Lexorank{}, err
	}
	key, err := KeyBetween(ka, kb)
	if err != nil {
		return Lexorank{}, err
	}
	return NewLexorank(bucket, key), nil
}

// NRanksBetween is the rank counterpart of NKeysBetween.
func NRanksBetween(bucket Bucket, a, b *Lexorank, n uint) ([]Lexorank, error) {
	ka, kb, err := rankBounds(bucket, a, b)
	if err != nil {
		return nil, err
	}
	keys, err := NKeysBetween(ka, kb, n)
	if err != nil {
		return nil, err
	}
	ranks := make([]Lexorank, len(keys))
	for i, k := range keys {
		ranks[i] = NewLexorank(bucket, k)
	}
	return ranks, nil
}

func rankBounds(bucket Bucket, a, b *Lexorank) (string, string, error) {
	var ka, kb string
	if a != nil {
		if a.bucket != bucket {
			return "", "", newError(ErrBucketMismatch, "lexorank bucket mismatch: %s not in bucket %d", a, bucket)
		}
		ka = a.key
	}
	if b != nil {
		if b.bucket != bucket {
			return "", "", newError(ErrBucketMismatch, "lexorank bucket mismatch: %s not in bucket %d", b, bucket)
		}
		kb = b.key
	}
	return ka, kb, nil
}
