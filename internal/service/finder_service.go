package service

import (
	"VaccineVault/internal/api/dto"
	"VaccineVault/internal/pkg/consts"
	"VaccineVault/internal/pkg/llm"
	"VaccineVault/internal/pkg/maps"
	"VaccineVault/internal/pkg/redis"
	"VaccineVault/internal/pkg/util"
	"context"
	"fmt"
	log "log/slog"
	"sort"
	"strconv"
	"strings"
	"time"
)

const centerKeyword = "vaccination centre"

type FinderService interface {
	FindCenters(ctx context.Context, pincode, userAddress string) (*dto.FindCentersResultDTO, error)
}

type FinderServiceImpl struct {
	mapsClient *maps.MapsClient
	radius     int
}

func NewFinderService(mapsClient *maps.MapsClient, searchRadius int) FinderService {
	return &FinderServiceImpl{
		mapsClient: mapsClient,
		radius:     searchRadius,
	}
}

// FindCenters 附近接种点检索
// 检索中心优先取用户地址坐标，否则回退邮编坐标；邮编坐标
// 先查缓存，再走地图地理编码，最后用大模型兜底
func (s *FinderServiceImpl) FindCenters(ctx context.Context, pincode, userAddress string) (*dto.FindCentersResultDTO, error) {
	pinGeo, err := s.pincodeCoordinates(ctx, pincode)
	if err != nil {
		return nil, err
	}

	refLat, refLng := pinGeo.Lat, pinGeo.Lng
	if userAddress != "" {
		if addrGeo, ok, err := s.mapsClient.GeocodeAddress(ctx, userAddress); err == nil && ok {
			refLat, refLng = addrGeo.Lat, addrGeo.Lng
		} else if err != nil {
			log.WarnContext(ctx, "用户地址解析失败，回退邮编坐标", "error", err)
		}
	}

	places, err := s.mapsClient.SearchNearby(ctx, centerKeyword, refLat, refLng, s.radius)
	if err != nil {
		return nil, err
	}
	places = filterByLocality(places, pinGeo.City, pinGeo.State)

	centers := make([]*dto.CenterDTO, 0, len(places))
	for _, p := range places {
		center := &dto.CenterDTO{
			Name:      p.Name,
			Address:   p.Address,
			Latitude:  p.Lat,
			Longitude: p.Lng,
		}
		switch {
		case p.Lat != 0 || p.Lng != 0:
			center.DistanceKm = util.HaversineKm(refLat, refLng, p.Lat, p.Lng)
		case p.Distance > 0:
			center.DistanceKm = p.Distance / 1000
		default:
			// 兜底：按邮编中心点近似
			center.DistanceKm = util.HaversineKm(refLat, refLng, pinGeo.Lat, pinGeo.Lng)
		}
		centers = append(centers, center)
	}
	sort.Slice(centers, func(i, j int) bool {
		return centers[i].DistanceKm < centers[j].DistanceKm
	})

	return &dto.FindCentersResultDTO{
		Pincode: pincode,
		Centers: centers,
	}, nil
}

// pincodeCoordinates 邮编坐标三级解析：缓存 → 地图服务 → 大模型
func (s *FinderServiceImpl) pincodeCoordinates(ctx context.Context, pincode string) (*maps.GeoResult, error) {
	key := consts.PincodeCoordKey + pincode
	if cached, err := redis.GetValue(ctx, key); err == nil && cached != "" {
		if geo, ok := parseCachedGeo(cached); ok {
			return geo, nil
		}
	}

	geo, ok, err := s.mapsClient.GeocodeAddress(ctx, pincode)
	if err != nil {
		log.WarnContext(ctx, "地图服务解析邮编失败，尝试大模型兜底", "pincode", pincode, "error", err)
	}
	if !ok || geo == nil {
		lat, lng, llmErr := llm.FetchPincodeCoordinates(ctx, pincode)
		if llmErr != nil {
			return nil, ErrPincodeNotFound
		}
		geo = &maps.GeoResult{Lat: lat, Lng: lng}
	}

	cached := fmt.Sprintf("%f,%f,%s,%s", geo.Lat, geo.Lng, geo.City, geo.State)
	if err = redis.SetWithExpiration(ctx, key, cached, 30*24*time.Hour); err != nil {
		log.WarnContext(ctx, "缓存邮编坐标失败", "pincode", pincode, "error", err)
	}
	return geo, nil
}

func parseCachedGeo(value string) (*maps.GeoResult, bool) {
	parts := strings.SplitN(value, ",", 4)
	if len(parts) < 2 {
		return nil, false
	}
	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, false
	}
	lng, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, false
	}
	geo := &maps.GeoResult{Lat: lat, Lng: lng}
	if len(parts) == 4 {
		geo.City = parts[2]
		geo.State = parts[3]
	}
	return geo, true
}

// filterByLocality 先按城市过滤，命中为空时退化为省份过滤，再为空则放行全部
func filterByLocality(places []maps.Place, city, state string) []maps.Place {
	if city != "" {
		filtered := matchAddress(places, city)
		if len(filtered) > 0 {
			return filtered
		}
	}
	if state != "" {
		filtered := matchAddress(places, state)
		if len(filtered) > 0 {
			return filtered
		}
	}
	return places
}

func matchAddress(places []maps.Place, term string) []maps.Place {
	term = strings.ToLower(term)
	out := make([]maps.Place, 0, len(places))
	for _, p := range places {
		if strings.Contains(strings.ToLower(p.Address), term) {
			out = append(out, p)
		}
	}
	return out
}
