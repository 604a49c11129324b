package redis

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	DefaultEmailCodeTTL = 5 * time.Minute
	EmailCodePrefix     = "email:code"

	// 两阶段键
	PendingSuffix   = "pending"
	ConfirmedSuffix = "confirmed"
)

var (
	ErrEmailNotFound       = errors.New("email not found")
	ErrEmailCodeDelFailed  = errors.New("email code delete failed")
	ErrCodePendingFailed   = errors.New("code pending failed")
	ErrCodeConfirmedFailed = errors.New("code confirmed failed")
)

// EmailRepository stores verification codes in two phases: a pending key is
// written before the mail goes out and promoted to confirmed only once the
// send succeeded, so an unsent code can never verify.
type EmailRepository struct{}

func codeKey(scope, phase, email string) string {
	return fmt.Sprintf("%s:%s:%s:%s", EmailCodePrefix, scope, phase, email)
}

func (e *EmailRepository) SetPending(scope, email, code string) error {
	if err := Client.Set(context.Background(), codeKey(scope, PendingSuffix, email), code, DefaultEmailCodeTTL).Err(); err != nil {
		return ErrCodePendingFailed
	}
	return nil
}

// Promote 使用lua脚本原子执行：取值+写入目标+设置 TTL+删除源
func (e *EmailRepository) Promote(scope, email string) error {
	srcKey := codeKey(scope, PendingSuffix, email)
	dstKey := codeKey(scope, ConfirmedSuffix, email)

	script := `
local val = redis.call("GET", KEYS[1])
if not val then
  return 0
end
redis.call("SET", KEYS[2], val, "PX", ARGV[1])
redis.call("DEL", KEYS[1])
return 1
`
	px := int64(DefaultEmailCodeTTL / time.Millisecond)
	res := Client.Eval(context.Background(), script, []string{srcKey, dstKey}, px)
	if err := res.Err(); err != nil {
		return ErrCodeConfirmedFailed
	}
	ok, _ := res.Int()
	if ok != 1 {
		return ErrCodeConfirmedFailed
	}
	return nil
}

// DeletePending 删除 pending 键（幂等）
func (e *EmailRepository) DeletePending(scope, email string) error {
	if err := Client.Del(context.Background(), codeKey(scope, PendingSuffix, email)).Err(); err != nil {
		return ErrEmailCodeDelFailed
	}
	return nil
}

// GetConfirmed 获取 confirmed 的验证码（校验时使用）
func (e *EmailRepository) GetConfirmed(scope, email string) (string, error) {
	val, err := Client.Get(context.Background(), codeKey(scope, ConfirmedSuffix, email)).Result()
	if err != nil {
		return "", ErrEmailNotFound
	}
	return val, nil
}

// DeleteConfirmed 验证通过后一次性删除
func (e *EmailRepository) DeleteConfirmed(scope, email string) error {
	if err := Client.Del(context.Background(), codeKey(scope, ConfirmedSuffix, email)).Err(); err != nil {
		return ErrEmailCodeDelFailed
	}
	return nil
}
