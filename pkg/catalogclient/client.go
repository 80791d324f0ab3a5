package catalogclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// ErrFetchFailed — единственный вид ошибки, который видят вызывающие.
// Транспортные сбои и не-2xx ответы сервера не различаются: ретраи
// и их политика — ответственность вызывающего кода, не клиента.
var ErrFetchFailed = errors.New("catalog fetch failed")

// Client — HTTP-клиент каталога Mini App.
// Без кэширования и без ретраев: один вызов — один запрос.
type Client struct {
	baseURL    string // например, "http://localhost:8080"
	httpClient *http.Client
	userID     int64 // telegram_id для подсчёта уникальных просмотров (0 = аноним)
}

type Option func(*Client)

// WithHTTPClient подменяет http.Client (таймауты, транспорт для тестов).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUserID задаёт telegram_id, передаваемый в заголовке X-Telegram-User-Id.
func WithUserID(id int64) Option {
	return func(c *Client) { c.userID = id }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doGet — внутренний хелпер: выполняет GET и декодирует JSON-ответ в out.
func (c *Client) doGet(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userID != 0 {
		req.Header.Set("X-Telegram-User-Id", strconv.FormatInt(c.userID, 10))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Тело читаем и выбрасываем, чтобы соединение вернулось в пул.
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: unexpected status %d for %s", ErrFetchFailed, resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrFetchFailed, err)
	}
	return nil
}

// List запрашивает одну страницу превью объявлений.
// В запрос попадают только заполненные поля ListQuery: отсутствие
// параметра (а не пустая строка) означает "без фильтра по этому полю".
func (c *Client) List(ctx context.Context, catalog CatalogType, q ListQuery, offset, limit int) (*ListPage, error) {
	var path string
	switch catalog {
	case CatalogCars:
		path = "/api/cars"
	case CatalogPlates:
		path = "/api/plates"
	default:
		return nil, fmt.Errorf("%w: unknown catalog type %q", ErrFetchFailed, catalog)
	}

	var page ListPage
	if err := c.doGet(ctx, path, q.values(catalog, offset, limit), &page); err != nil {
		return nil, err
	}
	if page.Items == nil {
		page.Items = []AdPreview{}
	}
	return &page, nil
}

// CarDetails запрашивает полное авто-объявление со всеми фото.
func (c *Client) CarDetails(ctx context.Context, adID int64) (*CarDetails, error) {
	var d CarDetails
	if err := c.doGet(ctx, fmt.Sprintf("/api/cars/%d", adID), nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// PlateDetails запрашивает полное объявление о продаже номера.
func (c *Client) PlateDetails(ctx context.Context, adID int64) (*PlateDetails, error) {
	var d PlateDetails
	if err := c.doGet(ctx, fmt.Sprintf("/api/plates/%d", adID), nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Cities возвращает список городов с количеством активных объявлений.
func (c *Client) Cities(ctx context.Context) ([]CityCount, error) {
	var cities []CityCount
	if err := c.doGet(ctx, "/api/cities", nil, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

// Brands возвращает статический каталог марок с моделями.
func (c *Client) Brands(ctx context.Context) ([]BrandModels, error) {
	var brands []BrandModels
	if err := c.doGet(ctx, "/api/brands", nil, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}
