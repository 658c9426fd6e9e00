package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// Token layout (encrypt-then-MAC):
//
//	version(1) | timestamp(8, big-endian unix) | iv(16) | ciphertext(16*n) | hmac(32)
//
// The first half of the key signs, the second half encrypts. The MAC covers
// everything before it, so any bit flip in the header, IV or ciphertext is
// caught before decryption starts.
const (
	tokenVersion = 0x80

	headerSize    = 1 + 8 // version + timestamp
	ivSize        = aes.BlockSize
	signatureSize = sha256.Size

	// Smallest valid token: header, IV, one cipher block, MAC.
	minTokenSize = headerSize + ivSize + aes.BlockSize + signatureSize
)

// Seal encrypts plaintext under key and returns an authenticated token.
// A fresh random IV is used on every call, so sealing the same plaintext
// twice under the same key yields different tokens.
func Seal(key, plaintext []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}

	iv, err := GenerateRandom(ivSize)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key[KeySize/2:])
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	token := make([]byte, 0, headerSize+ivSize+len(ciphertext)+signatureSize)
	token = append(token, tokenVersion)
	token = binary.BigEndian.AppendUint64(token, uint64(time.Now().Unix()))
	token = append(token, iv...)
	token = append(token, ciphertext...)

	mac := hmac.New(sha256.New, key[:KeySize/2])
	mac.Write(token)
	token = mac.Sum(token)

	return token, nil
}

// Open verifies and decrypts a token produced by Seal. Verification happens
// before any decryption, and every failure mode (truncation, unknown version,
// bad MAC, bad padding) surfaces as the same ErrAuthenticationFailed so a
// caller probing passwords learns nothing from the error.
func Open(key, token []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}
	if len(token) < minTokenSize {
		return nil, ErrAuthenticationFailed
	}
	if token[0] != tokenVersion {
		return nil, ErrAuthenticationFailed
	}

	signed := token[:len(token)-signatureSize]
	signature := token[len(token)-signatureSize:]

	mac := hmac.New(sha256.New, key[:KeySize/2])
	mac.Write(signed)
	if !hmac.Equal(mac.Sum(nil), signature) {
		return nil, ErrAuthenticationFailed
	}

	ciphertext := signed[headerSize+ivSize:]
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, ErrAuthenticationFailed
	}

	block, err := aes.NewCipher(key[KeySize/2:])
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	iv := signed[headerSize : headerSize+ivSize]
	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	plaintext, ok := pkcs7Unpad(padded, aes.BlockSize)
	if !ok {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, false
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, false
		}
	}
	return data[:len(data)-n], true
}
