package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"space_academy_backend/internal/config"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SpaceDataService proxies the space-agency open APIs (picture of the day,
// near-Earth-object feed, rover photos). Every fetch goes live API first,
// then cached copy, then a static fallback, so the mission flow keeps
// working when the upstream is down or rate limited.
type SpaceDataService struct {
	Config      config.SpaceDataConfig
	RedisClient *redis.Client
	HTTPClient  *http.Client
	Logger      *zap.Logger
}

func NewSpaceDataService(cfg config.SpaceDataConfig, redisClient *redis.Client, logger *zap.Logger) *SpaceDataService {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SpaceDataService{
		Config:      cfg,
		RedisClient: redisClient,
		HTTPClient:  &http.Client{Timeout: timeout},
		Logger:      logger,
	}
}

type PictureOfTheDay struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	URL         string `json:"url"`
	MediaType   string `json:"media_type"`
	Date        string `json:"date"`
}

type NearEarthObject struct {
	Name              string  `json:"name"`
	DiameterMinMeters float64 `json:"diameter_min_meters"`
	DiameterMaxMeters float64 `json:"diameter_max_meters"`
	Hazardous         bool    `json:"hazardous"`
	CloseApproachDate string  `json:"close_approach_date"`
	MissDistanceKM    string  `json:"miss_distance_km"`
}

type RoverPhoto struct {
	ID        int    `json:"id"`
	ImgSrc    string `json:"img_src"`
	EarthDate string `json:"earth_date"`
	Camera    string `json:"camera"`
	Rover     string `json:"rover"`
}

// GetPictureOfTheDay returns today's astronomy picture, cached for the day.
func (s *SpaceDataService) GetPictureOfTheDay(ctx context.Context) (*PictureOfTheDay, error) {
	cacheKey := "spacedata:apod:" + time.Now().Format("2006-01-02")

	var pod PictureOfTheDay
	if ok := s.readCache(ctx, cacheKey, &pod); ok {
		return &pod, nil
	}

	err := s.fetchJSON(ctx, "/planetary/apod", nil, &pod)
	if err != nil {
		s.Logger.Warn("picture of the day fetch failed, using fallback", zap.Error(err))
		return fallbackPicture(), nil
	}

	s.writeCache(ctx, cacheKey, &pod, 24*time.Hour)
	return &pod, nil
}

// GetNearEarthObjects returns the objects approaching Earth today, flattened
// from the upstream per-date feed.
func (s *SpaceDataService) GetNearEarthObjects(ctx context.Context) ([]NearEarthObject, error) {
	today := time.Now().Format("2006-01-02")
	cacheKey := "spacedata:neo:" + today

	var objects []NearEarthObject
	if ok := s.readCache(ctx, cacheKey, &objects); ok {
		return objects, nil
	}

	var feed struct {
		NearEarthObjects map[string][]struct {
			Name             string `json:"name"`
			EstimatedDiameter struct {
				Meters struct {
					Min float64 `json:"estimated_diameter_min"`
					Max float64 `json:"estimated_diameter_max"`
				} `json:"meters"`
			} `json:"estimated_diameter"`
			Hazardous         bool `json:"is_potentially_hazardous_asteroid"`
			CloseApproachData []struct {
				Date         string `json:"close_approach_date"`
				MissDistance struct {
					Kilometers string `json:"kilometers"`
				} `json:"miss_distance"`
			} `json:"close_approach_data"`
		} `json:"near_earth_objects"`
	}

	params := url.Values{}
	params.Set("start_date", today)
	params.Set("end_date", today)
	if err := s.fetchJSON(ctx, "/neo/rest/v1/feed", params, &feed); err != nil {
		s.Logger.Warn("near earth object fetch failed, using fallback", zap.Error(err))
		return fallbackNearEarthObjects(), nil
	}

	for _, list := range feed.NearEarthObjects {
		for _, raw := range list {
			obj := NearEarthObject{
				Name:              raw.Name,
				DiameterMinMeters: raw.EstimatedDiameter.Meters.Min,
				DiameterMaxMeters: raw.EstimatedDiameter.Meters.Max,
				Hazardous:         raw.Hazardous,
			}
			if len(raw.CloseApproachData) > 0 {
				obj.CloseApproachDate = raw.CloseApproachData[0].Date
				obj.MissDistanceKM = raw.CloseApproachData[0].MissDistance.Kilometers
			}
			objects = append(objects, obj)
		}
	}

	if len(objects) == 0 {
		return fallbackNearEarthObjects(), nil
	}

	s.writeCache(ctx, cacheKey, objects, 6*time.Hour)
	return objects, nil
}

// GetRoverPhotos returns recent Curiosity photos, cached for six hours.
func (s *SpaceDataService) GetRoverPhotos(ctx context.Context) ([]RoverPhoto, error) {
	cacheKey := "spacedata:rover:curiosity"

	var photos []RoverPhoto
	if ok := s.readCache(ctx, cacheKey, &photos); ok {
		return photos, nil
	}

	var payload struct {
		LatestPhotos []struct {
			ID     int    `json:"id"`
			ImgSrc string `json:"img_src"`
			Date   string `json:"earth_date"`
			Camera struct {
				FullName string `json:"full_name"`
			} `json:"camera"`
			Rover struct {
				Name string `json:"name"`
			} `json:"rover"`
		} `json:"latest_photos"`
	}

	if err := s.fetchJSON(ctx, "/mars-photos/api/v1/rovers/curiosity/latest_photos", nil, &payload); err != nil {
		s.Logger.Warn("rover photo fetch failed, using fallback", zap.Error(err))
		return fallbackRoverPhotos(), nil
	}

	for _, raw := range payload.LatestPhotos {
		photos = append(photos, RoverPhoto{
			ID:        raw.ID,
			ImgSrc:    raw.ImgSrc,
			EarthDate: raw.Date,
			Camera:    raw.Camera.FullName,
			Rover:     raw.Rover.Name,
		})
		if len(photos) >= 12 {
			break
		}
	}

	if len(photos) == 0 {
		return fallbackRoverPhotos(), nil
	}

	s.writeCache(ctx, cacheKey, photos, 6*time.Hour)
	return photos, nil
}

func (s *SpaceDataService) fetchJSON(ctx context.Context, path string, params url.Values, dst interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	if s.Config.APIKey != "" {
		params.Set("api_key", s.Config.APIKey)
	}

	endpoint := s.Config.BaseURL + path
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("space data API returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}

func (s *SpaceDataService) readCache(ctx context.Context, key string, dst interface{}) bool {
	if s.RedisClient == nil {
		return false
	}
	data, err := s.RedisClient.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(data), dst) == nil
}

func (s *SpaceDataService) writeCache(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if s.RedisClient == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.RedisClient.Set(ctx, key, data, ttl).Err(); err != nil {
		s.Logger.Warn("space data cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Static fallbacks keep mission pages populated when the upstream API and the
// cache are both unavailable.
func fallbackPicture() *PictureOfTheDay {
	return &PictureOfTheDay{
		Title:       "The Pillars of Creation",
		Explanation: "Towering columns of interstellar gas and dust in the Eagle Nebula, about 6,500 light-years from Earth, where new stars are forming.",
		URL:         "/img/fallback/pillars.jpg",
		MediaType:   "image",
		Date:        time.Now().Format("2006-01-02"),
	}
}

func fallbackNearEarthObjects() []NearEarthObject {
	return []NearEarthObject{
		{
			Name:              "(2010 XC15)",
			DiameterMinMeters: 120,
			DiameterMaxMeters: 270,
			Hazardous:         true,
			CloseApproachDate: time.Now().Format("2006-01-02"),
			MissDistanceKM:    "770000",
		},
		{
			Name:              "(2023 BU)",
			DiameterMinMeters: 4,
			DiameterMaxMeters: 8,
			Hazardous:         false,
			CloseApproachDate: time.Now().Format("2006-01-02"),
			MissDistanceKM:    "9967",
		},
	}
}

func fallbackRoverPhotos() []RoverPhoto {
	return []RoverPhoto{
		{
			ID:        102693,
			ImgSrc:    "/img/fallback/curiosity-mastcam.jpg",
			EarthDate: "2023-03-14",
			Camera:    "Mast Camera",
			Rover:     "Curiosity",
		},
	}
}
