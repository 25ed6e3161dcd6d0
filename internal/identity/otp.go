package identity

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/spa-booking/internal/httperr"
)

// OTPService gerencia códigos de login por celular. O código nunca é
// guardado em claro: só o hash bcrypt, com TTL, no Redis.
type OTPService struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewOTPService(rdb *redis.Client, ttlMinutes int) *OTPService {
	if ttlMinutes <= 0 {
		ttlMinutes = 5
	}
	return &OTPService{
		rdb: rdb,
		ttl: time.Duration(ttlMinutes) * time.Minute,
	}
}

func otpKey(mobile string) string {
	return "otp:" + mobile
}

// Request gera e registra um código de 6 dígitos para o celular.
// O envio por SMS fica com o gateway externo; em desenvolvimento o
// código sai no log.
func (s *OTPService) Request(ctx context.Context, mobile string) error {
	code, err := sixDigits()
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.rdb.Set(ctx, otpKey(mobile), string(hash), s.ttl).Err(); err != nil {
		return err
	}

	zap.L().Info("otp issued", zap.String("mobile", mobile), zap.String("code", code))
	return nil
}

// Verify confere o código e o consome (uso único).
func (s *OTPService) Verify(ctx context.Context, mobile, code string) error {
	hash, err := s.rdb.Get(ctx, otpKey(mobile)).Result()
	if errors.Is(err, redis.Nil) {
		return httperr.ErrBusiness("otp_expired")
	}
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) != nil {
		return httperr.ErrBusiness("otp_invalid")
	}

	if err := s.rdb.Del(ctx, otpKey(mobile)).Err(); err != nil {
		zap.L().Warn("otp consume failed", zap.Error(err))
	}
	return nil
}

func sixDigits() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
