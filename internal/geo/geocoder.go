package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/amigomontador/backend/pkg/clients"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ErrInvalidCEP = errors.New("CEP must have 8 digits")

const cacheTTL = 30 * 24 * time.Hour

var nonDigits = regexp.MustCompile(`\D`)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type viaCEPResponse struct {
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

// Geocoder resolves Brazilian CEPs to approximate coordinates: ViaCEP gives
// the city/state, a city table gives the coordinates, and a state centroid
// is the last resort. Results are cached in redis when available.
type Geocoder struct {
	client clients.HTTPClientI
	cache  *redis.Client
	url    string
}

func New(client clients.HTTPClientI, cache *redis.Client) *Geocoder {
	return &Geocoder{
		client: client,
		cache:  cache,
		url:    "https://viacep.com.br/ws",
	}
}

func (g *Geocoder) Resolve(ctx context.Context, cep string) (*Coordinates, error) {
	clean := nonDigits.ReplaceAllString(cep, "")
	if len(clean) != 8 {
		return nil, ErrInvalidCEP
	}

	if coords := g.fromCache(ctx, clean); coords != nil {
		return coords, nil
	}

	coords, err := g.lookup(clean)
	if err != nil {
		zap.L().Warn("viacep lookup failed, using state fallback", zap.String("cep", clean), zap.Error(err))
		coords = fallbackCoordinates(clean)
	}

	g.toCache(ctx, clean, coords)
	return coords, nil
}

func (g *Geocoder) lookup(cep string) (*Coordinates, error) {
	status, body, _, err := g.client.Get(fmt.Sprintf("%s/%s/json/", g.url, cep), nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("viacep returned status %d", status)
	}

	var resp viaCEPResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("can't parse viacep response: %w", err)
	}
	if resp.Erro {
		return nil, errors.New("CEP not found")
	}

	coords := cityCoordinates(resp.Localidade, resp.UF)
	// spread addresses of the same city apart a little, keyed by the CEP
	// suffix, so distance ordering is stable
	suffix := float64(int(cep[5]-'0')*100+int(cep[6]-'0')*10+int(cep[7]-'0')) / 10000
	coords.Latitude += (suffix - 0.05) * 0.01
	coords.Longitude += (suffix - 0.05) * 0.01
	return coords, nil
}

func (g *Geocoder) fromCache(ctx context.Context, cep string) *Coordinates {
	if g.cache == nil {
		return nil
	}
	data, err := g.cache.Get(ctx, "geo:cep:"+cep).Bytes()
	if err != nil {
		return nil
	}
	var coords Coordinates
	if err := json.Unmarshal(data, &coords); err != nil {
		return nil
	}
	return &coords
}

func (g *Geocoder) toCache(ctx context.Context, cep string, coords *Coordinates) {
	if g.cache == nil || coords == nil {
		return
	}
	data, err := json.Marshal(coords)
	if err != nil {
		return
	}
	if err := g.cache.Set(ctx, "geo:cep:"+cep, data, cacheTTL).Err(); err != nil {
		zap.L().Debug("can't cache geocode result", zap.Error(err))
	}
}
