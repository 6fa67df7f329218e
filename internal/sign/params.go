package sign

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Param is one key/value pair of the signature input.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered parameter list. Order is significant: the platform
// hashes the pairs exactly as they are listed.
type Params []Param

// Canonical joins the pairs as k=v separated by commas.
func (p Params) Canonical() string {
	var sb strings.Builder
	for i, kv := range p {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(kv.Key)
		sb.WriteByte('=')
		sb.WriteString(kv.Value)
	}
	return sb.String()
}

// Stub returns the hex MD5 digest of the canonical form.
func (p Params) Stub() string {
	sum := md5.Sum([]byte(p.Canonical()))
	return hex.EncodeToString(sum[:])
}

// Get returns the value for key, or "" when absent.
func (p Params) Get(key string) string {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value
		}
	}
	return ""
}
