package crypto

import "encoding/base64"

// EncodeEnvelope concatenates salt and token and base64-encodes the result
// into a single line safe for clipboards and plain-text files. DecodeEnvelope
// is the exact inverse.
func EncodeEnvelope(salt, token []byte) string {
	combined := make([]byte, 0, len(salt)+len(token))
	combined = append(combined, salt...)
	combined = append(combined, token...)
	return base64.StdEncoding.EncodeToString(combined)
}

// DecodeEnvelope splits envelope text back into salt and token. Invalid
// base64 or a payload too short to contain a salt yields ErrMalformedEnvelope.
func DecodeEnvelope(text string) (salt, token []byte, err error) {
	combined, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, nil, ErrMalformedEnvelope
	}
	if len(combined) < SaltSize {
		return nil, nil, ErrMalformedEnvelope
	}
	return combined[:SaltSize], combined[SaltSize:], nil
}
