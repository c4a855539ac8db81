package notifier

import (
	"bytes"
	"cinedex/internal/util"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ReplayAlert : тело уведомления о повторном использовании
// ротированного refresh токена (признак возможной кражи токена)
type ReplayAlert struct {
	UserUUID   string    `json:"user_uuid"`
	TokenHash  string    `json:"token_hash"`
	DetectedAt time.Time `json:"detected_at"`
}

// NotifyReplayDetected отправляет POST-запрос на webhook с информацией
// о событии. Ошибка отправки не влияет на обработку запроса клиента.
func NotifyReplayDetected(url string, timeout time.Duration, userUUID string, tokenHash string) error {
	if url == "" {
		return nil
	}

	alert := ReplayAlert{
		UserUUID:   userUUID,
		TokenHash:  tokenHash,
		DetectedAt: time.Now().UTC(),
	}

	body, err := json.Marshal(alert)
	if err != nil {
		return util.LogError("[Notifier] ошибка сериализации уведомления", err)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return util.LogError("[Notifier] ошибка отправки webhook", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("[Notifier] webhook вернул статус %d", resp.StatusCode)
	}

	return nil
}
