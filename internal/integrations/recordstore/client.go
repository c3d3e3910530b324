package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Config параметры подключения к хранилищу записей.
// Передаётся явно при создании клиента — никакого глобального состояния.
type Config struct {
	BaseURL        string
	AnonKey        string
	ServiceRoleKey string // опционально: предпочитается для записей под RLS
	Timeout        time.Duration
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder фиксирует метрики round-trip'ов к хранилищу
type MetricsRecorder interface {
	ObserveStoreRequest(table, operation string, duration time.Duration, err error)
}

// Client шлюз к удалённому табличному хранилищу записей: REST интерфейс
// /rest/v1/<table> с фильтрами и сортировкой в query-параметрах.
// Чтения выполняются под anon-ключом, записи — под service-role ключом,
// если он задан.
type Client struct {
	baseURL        string
	anonKey        string
	serviceRoleKey string
	httpClient     *http.Client
	metrics        MetricsRecorder
	log            Logger
}

// NewClient создает новый экземпляр шлюза. metrics может быть nil.
func NewClient(cfg Config, metrics MetricsRecorder, log Logger) *Client {
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		anonKey:        cfg.AnonKey,
		serviceRoleKey: cfg.ServiceRoleKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		metrics: metrics,
		log:     log,
	}
}

// Select выполняет фильтрованное чтение из таблицы
func (c *Client) Select(ctx context.Context, table string, query Query) ([]json.RawMessage, error) {
	raw, err := c.do(ctx, http.MethodGet, table, "select", query.Encode(true), nil, false, false)
	if err != nil {
		return nil, err
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("%w: Select %s - decode response: %v", ErrInvalidResponse, table, err)
	}

	return rows, nil
}

// Insert вставляет строку. При non-nil out запрашивает представление
// созданной строки (Prefer: return=representation) и декодирует его в out.
func (c *Client) Insert(ctx context.Context, table string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: Insert %s - encode payload: %v", ErrInternal, table, err)
	}

	raw, err := c.do(ctx, http.MethodPost, table, "insert", "", body, true, out != nil)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := decodeFirstRow(raw, out); err != nil {
		return fmt.Errorf("%w: Insert %s - decode created row: %v", ErrInvalidResponse, table, err)
	}

	return nil
}

// Update применяет частичное обновление ко всем строкам, попадающим под
// фильтр. При non-nil out декодирует представление первой обновлённой
// строки; если хранилище не вернуло представление, out не изменяется и
// ошибки нет.
func (c *Client) Update(ctx context.Context, table string, query Query, patch interface{}, out interface{}) error {
	body, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("%w: Update %s - encode patch: %v", ErrInternal, table, err)
	}

	raw, err := c.do(ctx, http.MethodPatch, table, "update", query.Encode(false), body, true, out != nil)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	// Представление не обязательно: часть конфигураций хранилища
	// игнорирует Prefer
	if err := decodeFirstRow(raw, out); err != nil {
		c.log.Warn("Update %s: representation not honored, returning without row: %v", table, err)
	}

	return nil
}

// Delete удаляет все строки, попадающие под фильтр
func (c *Client) Delete(ctx context.Context, table string, query Query) error {
	_, err := c.do(ctx, http.MethodDelete, table, "delete", query.Encode(false), nil, true, false)
	return err
}

// do выполняет один round-trip с учётом метрик
func (c *Client) do(ctx context.Context, method, table, operation, rawQuery string, body []byte, write, preferReturn bool) ([]byte, error) {
	start := time.Now()
	raw, err := c.roundTrip(ctx, method, table, rawQuery, body, write, preferReturn)
	if c.metrics != nil {
		c.metrics.ObserveStoreRequest(table, operation, time.Since(start), err)
	}
	return raw, err
}

func (c *Client) roundTrip(ctx context.Context, method, table, rawQuery string, body []byte, write, preferReturn bool) ([]byte, error) {
	url := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	if rawQuery != "" {
		url += "?" + rawQuery
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	key := c.anonKey
	if write && c.serviceRoleKey != "" {
		key = c.serviceRoleKey
	}
	req.Header.Set("apikey", key)
	req.Header.Set("Authorization", "Bearer "+key)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if preferReturn {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInternal, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error("%s %s/%s failed: status=%d body=%s", method, c.baseURL, table, resp.StatusCode, string(respBody))
		return nil, fmt.Errorf("%w: %s %s: status %d: %s", ErrBadStatus, method, table, resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// decodeFirstRow декодирует первый элемент массива-представления в out
func decodeFirstRow(raw []byte, out interface{}) error {
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("empty representation")
	}
	return json.Unmarshal(rows[0], out)
}
