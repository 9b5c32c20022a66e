// file: utils/hash.go
package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// HashAnswer 计算答案的 SHA-256 十六进制哈希（入库前调用，明文答案不落库）
func HashAnswer(answer string) string {
	sum := sha256.Sum256([]byte(answer))
	return hex.EncodeToString(sum[:])
}

// SecureCompare 恒定时间比较两个哈希串，避免计时侧信道
func SecureCompare(candidate, stored string) bool {
	a := []byte(strings.ToLower(strings.TrimSpace(candidate)))
	b := []byte(strings.ToLower(stored))
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
