package service

import (
	"cinedex/config"
	"cinedex/internal/apperrors"
	"cinedex/internal/model"
	"cinedex/internal/notifier"
	"cinedex/internal/ports"
	"cinedex/internal/security"
	"context"
	"log"
	"time"
)

// SystemClock : реализация ports.Clock на системном времени
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// RefreshTokenService управляет жизненным циклом refresh токенов:
// выдача, проверка, ротация, отзыв. Состояние токена терминально:
// из active он переходит ровно один раз в rotated, revoked или expired.
//
// Сервис не хранит состояние между вызовами, вся сериализация
// конкурентных ротаций выполняется CAS-условием в хранилище.
type RefreshTokenService struct {
	store    ports.RefreshTokenStore
	clock    ports.Clock
	lifetime time.Duration
	webhook  *config.WebhookConfig
}

func NewRefreshTokenService(
	store ports.RefreshTokenStore,
	clock ports.Clock,
	lifetime time.Duration,
	webhook *config.WebhookConfig,
) *RefreshTokenService {
	return &RefreshTokenService{
		store:    store,
		clock:    clock,
		lifetime: lifetime,
		webhook:  webhook,
	}
}

// Issue выпускает новый refresh токен для пользователя.
// Возвращает сырой секрет (повторно получить его нельзя, в БД
// хранится только хэш) и сохранённую запись.
func (s *RefreshTokenService) Issue(ctx context.Context, userUUID string) (string, *model.RefreshToken, error) {
	rawToken, tokenHash, err := security.GenerateRefreshToken()
	if err != nil {
		return "", nil, err
	}

	now := s.clock.Now()
	refreshToken := &model.RefreshToken{
		TokenHash: tokenHash,
		UserUUID:  userUUID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.lifetime),
	}

	if err := s.store.SaveRefreshToken(ctx, refreshToken); err != nil {
		return "", nil, err
	}

	return rawToken, refreshToken, nil
}

// Validate проверяет предъявленный секрет и возвращает активную запись.
// Порядок проверок: не найден, отозван (в том числе ротацией), просрочен.
func (s *RefreshTokenService) Validate(ctx context.Context, rawToken string) (*model.RefreshToken, error) {
	refreshToken, err := s.store.FindByHash(ctx, security.HashRefreshToken(rawToken))
	if err != nil {
		return nil, err
	}

	switch refreshToken.Status(s.clock.Now()) {
	case model.TokenStatusRotated, model.TokenStatusRevoked:
		return nil, apperrors.ErrRefreshTokenRevoked
	case model.TokenStatusExpired:
		return nil, apperrors.ErrRefreshTokenExpired
	}

	return refreshToken, nil
}

// Rotate обменивает действующий refresh токен на новый.
// Старый токен отзывается и новый вставляется одной транзакцией
// хранилища; при конкурентных ротациях одного токена выигрывает
// ровно одна.
//
// Предъявление уже ротированного токена — сигнал возможной кражи:
// вся цепочка ротации отзывается (best-effort) и отправляется
// уведомление на security webhook. Наружу при этом уходит та же
// ошибка, что и при прочих невалидных токенах.
//
// expectedUserUUID сверяется с владельцем записи, если передан
// непустым; несовпадение не раскрывается отдельной ошибкой.
func (s *RefreshTokenService) Rotate(ctx context.Context, rawToken string, expectedUserUUID string) (string, *model.RefreshToken, error) {
	oldTokenHash := security.HashRefreshToken(rawToken)

	oldToken, err := s.store.FindByHash(ctx, oldTokenHash)
	if err != nil {
		return "", nil, err
	}

	now := s.clock.Now()

	if oldToken.ReplacedByHash != nil {
		s.handleReplay(oldToken)
		return "", nil, apperrors.ErrRefreshTokenInvalid
	}
	if oldToken.RevokedAt != nil {
		return "", nil, apperrors.ErrRefreshTokenRevoked
	}
	if now.After(oldToken.ExpiresAt) {
		return "", nil, apperrors.ErrRefreshTokenExpired
	}
	if expectedUserUUID != "" && oldToken.UserUUID != expectedUserUUID {
		log.Printf("refresh token %s: владелец не совпадает с ожидаемым", oldTokenHash)
		return "", nil, apperrors.ErrRefreshTokenInvalid
	}

	newRawToken, newTokenHash, err := security.GenerateRefreshToken()
	if err != nil {
		return "", nil, err
	}

	successor := &model.RefreshToken{
		TokenHash: newTokenHash,
		UserUUID:  oldToken.UserUUID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.lifetime),
	}

	rotated, err := s.store.RotateRefreshToken(ctx, oldTokenHash, now, successor)
	if err != nil {
		return "", nil, err
	}
	if !rotated {
		// конкурентная ротация успела первой, этот вызов проиграл CAS
		log.Printf("refresh token %s: проигран CAS конкурентной ротации", oldTokenHash)
		return "", nil, apperrors.ErrRefreshTokenInvalid
	}

	return newRawToken, successor, nil
}

// Revoke идемпотентно отзывает токен. Отсутствие токена или повторный
// отзыв ошибкой не считаются: вызывающий при logout не должен узнать,
// существовал ли токен.
func (s *RefreshTokenService) Revoke(ctx context.Context, rawToken string) error {
	_, err := s.store.CompareAndRevoke(ctx, security.HashRefreshToken(rawToken), s.clock.Now())
	return err
}

// handleReplay отзывает цепочку ротации и уведомляет webhook.
// Каскадный отзыв выполняется best-effort: его ошибка логируется,
// но не меняет ответ клиенту.
func (s *RefreshTokenService) handleReplay(token *model.RefreshToken) {
	log.Printf("refresh token %s: повторное использование ротированного токена, отзыв цепочки", token.TokenHash)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if _, err := s.store.RevokeChain(ctx, token.TokenHash, s.clock.Now()); err != nil {
			log.Printf("не удалось отозвать цепочку токенов: %v", err)
		}

		if s.webhook == nil {
			return
		}
		timeout, err := time.ParseDuration(s.webhook.Timeout)
		if err != nil {
			timeout = 5 * time.Second
		}
		if err := notifier.NotifyReplayDetected(s.webhook.URL, timeout, token.UserUUID, token.TokenHash); err != nil {
			log.Printf("ошибка отправки webhook: %v", err)
		}
	}()
}
