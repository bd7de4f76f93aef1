package maps

import (
	"VaccineVault/internal/api/config"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// Place 附近接种点
type Place struct {
	Name     string  `json:"placeName"`
	Address  string  `json:"placeAddress"`
	Lat      float64 `json:"latitude"`
	Lng      float64 `json:"longitude"`
	Distance float64 `json:"distance"`
}

type nearbyResponse struct {
	SuggestedLocations []Place `json:"suggestedLocations"`
}

// GeoResult 地理编码结果，城市与省份用于检索结果过滤
type GeoResult struct {
	Lat   float64
	Lng   float64
	City  string
	State string
}

type geocodeResponse struct {
	CopResults struct {
		Lat   float64 `json:"latitude"`
		Lng   float64 `json:"longitude"`
		City  string  `json:"city"`
		State string  `json:"state"`
	} `json:"copResults"`
}

// MapsClient 封装 Mappls 地图开放平台的检索与地理编码接口
type MapsClient struct {
	httpClient *resty.Client
	cfg        config.MapsConfig
}

func NewMapsClient(cfg *config.Config) *MapsClient {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2)
	return &MapsClient{
		httpClient: client,
		cfg:        cfg.Maps,
	}
}

// SearchNearby 按坐标搜索附近的接种点，radius 单位为米
func (c *MapsClient) SearchNearby(ctx context.Context, keyword string, lat, lng float64, radius int) ([]Place, error) {
	token, err := c.getAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	var result nearbyResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Authorization", "bearer "+token).
		SetQueryParams(map[string]string{
			"keywords":    keyword,
			"refLocation": fmt.Sprintf("%f,%f", lat, lng),
			"radius":      strconv.Itoa(radius),
			"sortBy":      "dist",
		}).
		SetResult(&result).
		Get(c.cfg.AtlasURL + "/places/nearby/json")
	if err != nil {
		return nil, fmt.Errorf("附近检索请求失败: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("附近检索接口返回 %d", resp.StatusCode())
	}
	return result.SuggestedLocations, nil
}

// GeocodeAddress 地址或邮编解析为坐标，查不到时 ok 为 false
func (c *MapsClient) GeocodeAddress(ctx context.Context, address string) (*GeoResult, bool, error) {
	token, err := c.getAccessToken(ctx)
	if err != nil {
		return nil, false, err
	}

	var result geocodeResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Authorization", "bearer "+token).
		SetQueryParam("address", address).
		SetResult(&result).
		Get(c.cfg.AtlasURL + "/places/geocode")
	if err != nil {
		return nil, false, fmt.Errorf("地理编码请求失败: %w", err)
	}
	if resp.StatusCode() == 204 || resp.StatusCode() == 404 {
		return nil, false, nil
	}
	if resp.IsError() {
		return nil, false, fmt.Errorf("地理编码接口返回 %d", resp.StatusCode())
	}
	if result.CopResults.Lat == 0 && result.CopResults.Lng == 0 {
		return nil, false, nil
	}
	return &GeoResult{
		Lat:   result.CopResults.Lat,
		Lng:   result.CopResults.Lng,
		City:  result.CopResults.City,
		State: result.CopResults.State,
	}, true, nil
}
