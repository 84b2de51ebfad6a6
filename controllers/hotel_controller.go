package controllers

import (
	"log"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const hotelsCacheKey = "hotels:all"

func toRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:          room.ID,
		HotelID:     room.HotelID,
		RoomNumber:  room.RoomNumber,
		Type:        room.Type,
		Status:      room.Status,
		Price:       room.Price,
		Capacity:    room.Capacity,
		Description: room.Description,
		Avatar:      room.Avatar,
		Img:         room.Img,
	}
}

func toHotelResponse(hotel models.Hotel, withRooms bool) dto.HotelResponse {
	resp := dto.HotelResponse{
		ID:               hotel.ID,
		Name:             hotel.Name,
		ShortDescription: hotel.ShortDescription,
		Description:      hotel.Description,
		BasePrice:        hotel.BasePrice,
		Status:           hotel.Status,
		Avatar:           hotel.Avatar,
		Img:              hotel.Img,
		Amenities:        hotel.Amenities,
		Address:          hotel.Address,
		Province:         hotel.Province,
		District:         hotel.District,
		Ward:             hotel.Ward,
		Longitude:        hotel.Longitude,
		Latitude:         hotel.Latitude,
		TimeCheckIn:      hotel.TimeCheckIn,
		TimeCheckOut:     hotel.TimeCheckOut,
		AverageRating:    hotel.AverageRating,
		TotalReviews:     hotel.TotalReviews,
	}
	if withRooms {
		resp.Rooms = make([]dto.RoomResponse, 0, len(hotel.Rooms))
		for _, room := range hotel.Rooms {
			resp.Rooms = append(resp.Rooms, toRoomResponse(room))
		}
	}
	return resp
}

// loadHotels serves the full catalog from Redis, falling back to the
// database and repopulating the cache on a miss.
func loadHotels() ([]models.Hotel, error) {
	var hotels []models.Hotel

	if config.RedisClient != nil {
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, hotelsCacheKey, &hotels); err == nil && len(hotels) > 0 {
			return hotels, nil
		}
	}

	if err := config.DB.Preload("Rooms").Find(&hotels).Error; err != nil {
		return nil, err
	}

	if config.RedisClient != nil {
		if err := services.SetToRedis(config.Ctx, config.RedisClient, hotelsCacheKey, hotels, 10*time.Minute); err != nil {
			log.Printf("cache hotels: %v", err)
		}
	}
	return hotels, nil
}

func invalidateHotelsCache() {
	if config.RedisClient == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, hotelsCacheKey); err != nil {
		log.Printf("invalidate hotels cache: %v", err)
	}
}

// GetHotels lists the catalog with in-memory filters over the cached set
func GetHotels(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 {
		limit = 10
	}

	hotels, err := loadHotels()
	if err != nil {
		response.ServerError(c)
		return
	}

	nameFilter := normalizeInput(c.Query("name"))
	provinceFilter := normalizeInput(c.Query("province"))
	statusFilter := c.Query("status")

	var filtered []models.Hotel
	for _, hotel := range hotels {
		if nameFilter != "" && !strings.Contains(normalizeInput(hotel.Name), nameFilter) {
			continue
		}
		if provinceFilter != "" && normalizeInput(hotel.Province) != provinceFilter {
			continue
		}
		if statusFilter != "" {
			status, err := strconv.Atoi(statusFilter)
			if err != nil || hotel.Status != status {
				continue
			}
		}
		filtered = append(filtered, hotel)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Popularity > filtered[j].Popularity
	})

	total := len(filtered)
	start := page * limit
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	hotelsResponse := make([]dto.HotelResponse, 0, end-start)
	for _, hotel := range filtered[start:end] {
		hotelsResponse = append(hotelsResponse, toHotelResponse(hotel, false))
	}

	response.SuccessWithPagination(c, hotelsResponse, page, limit, total)
}

// GetHotelDetail returns one hotel with its rooms
func GetHotelDetail(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid hotel id")
		return
	}

	hotel, err := catalogService().GetHotel(uint(hotelID))
	if err != nil {
		response.NotFoundMessage(c, "Hotel not found")
		return
	}

	response.Success(c, toHotelResponse(*hotel, true))
}

// CreateHotel adds a catalog entry with its initial room list
func CreateHotel(c *gin.Context) {
	var input dto.CreateHotelRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hotel := models.Hotel{
		UserID:           c.GetUint("userID"),
		Name:             input.Name,
		ShortDescription: input.ShortDescription,
		Description:      input.Description,
		BasePrice:        input.BasePrice,
		Avatar:           input.Avatar,
		Img:              input.Img,
		Amenities:        input.Amenities,
		Address:          input.Address,
		Province:         input.Province,
		District:         input.District,
		Ward:             input.Ward,
		Longitude:        input.Longitude,
		Latitude:         input.Latitude,
		TimeCheckIn:      input.TimeCheckIn,
		TimeCheckOut:     input.TimeCheckOut,
	}
	for _, r := range input.Rooms {
		hotel.Rooms = append(hotel.Rooms, models.Room{
			RoomNumber:  r.RoomNumber,
			Type:        r.Type,
			Price:       r.Price,
			Capacity:    r.Capacity,
			Description: r.Description,
			Avatar:      r.Avatar,
			Img:         r.Img,
		})
	}

	if err := hotel.ValidateRoomNumbers(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	for i := range hotel.Rooms {
		if err := hotel.Rooms[i].ValidateType(); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	if err := config.DB.Create(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateHotelsCache()
	response.Created(c, toHotelResponse(hotel, true))
}

// UpdateHotel mutates a catalog entry; zero-valued fields stay unchanged
func UpdateHotel(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid hotel id")
		return
	}

	var input dto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hotel, err := catalogService().GetHotel(uint(hotelID))
	if err != nil {
		response.NotFoundMessage(c, "Hotel not found")
		return
	}

	if input.Name != "" {
		hotel.Name = input.Name
	}
	if input.ShortDescription != "" {
		hotel.ShortDescription = input.ShortDescription
	}
	if input.Description != "" {
		hotel.Description = input.Description
	}
	if input.BasePrice > 0 {
		hotel.BasePrice = input.BasePrice
	}
	if input.Status != nil {
		hotel.Status = *input.Status
		if err := hotel.ValidateStatus(); err != nil {
			response.BadRequest(c, "Invalid status")
			return
		}
	}
	if input.Avatar != "" {
		hotel.Avatar = input.Avatar
	}
	if len(input.Img) > 0 {
		hotel.Img = input.Img
	}
	if len(input.Amenities) > 0 {
		hotel.Amenities = input.Amenities
	}
	if input.Address != "" {
		hotel.Address = input.Address
	}
	if input.Province != "" {
		hotel.Province = input.Province
	}
	if input.District != "" {
		hotel.District = input.District
	}
	if input.Ward != "" {
		hotel.Ward = input.Ward
	}
	if input.TimeCheckIn != "" {
		hotel.TimeCheckIn = input.TimeCheckIn
	}
	if input.TimeCheckOut != "" {
		hotel.TimeCheckOut = input.TimeCheckOut
	}

	if err := config.DB.Omit("Rooms").Save(hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateHotelsCache()
	response.Success(c, toHotelResponse(*hotel, false))
}

func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

var ratingPattern = regexp.MustCompile(`(\d+)\s*star`)

func extractRatingFromQuery(query string) int {
	match := ratingPattern.FindStringSubmatch(query)
	if len(match) < 2 {
		return -1
	}
	rating, err := strconv.Atoi(match[1])
	if err != nil {
		return -1
	}
	return rating
}

// parseRoomType maps free-text room wording onto the room type enum,
// -1 when nothing matches.
func parseRoomType(query string) int {
	typeKeywords := map[int][]string{
		0: {"standard", "standard room", "basic"},
		1: {"deluxe", "deluxe room"},
		2: {"suite", "junior suite", "executive suite"},
		3: {"premium", "penthouse", "presidential"},
	}

	for roomType, keywords := range typeKeywords {
		matcher := createMatcher(keywords)
		best := matcher.Closest(query)
		if best != "" && strings.Contains(query, best) {
			return roomType
		}
	}
	return -1
}

// prepareUniqueProvinces builds the province keyword list for closestmatch
func prepareUniqueProvinces(hotels []models.Hotel) []string {
	unique := make(map[string]bool)
	for _, hotel := range hotels {
		if hotel.Province != "" {
			unique[normalizeInput(hotel.Province)] = true
		}
	}
	list := make([]string, 0, len(unique))
	for val := range unique {
		list = append(list, val)
	}
	return list
}

func calculateHotelScore(query string, hotel models.Hotel, cmProvince *closestmatch.ClosestMatch) int {
	score := 0

	normalizedName := normalizeInput(hotel.Name)
	if strings.Contains(query, normalizedName) {
		score += 25
	} else if calculateSimilarity(query, normalizedName) > 0.7 {
		score += 18
	}

	if cmProvince.Closest(query) == normalizeInput(hotel.Province) {
		score += 13
	}

	if rating := extractRatingFromQuery(query); rating != -1 && int(hotel.AverageRating+0.5) == rating {
		score += 10
	}

	if roomType := parseRoomType(query); roomType != -1 {
		for _, room := range hotel.Rooms {
			if room.Type == roomType {
				score += 8
				break
			}
		}
	}

	return score
}

func filterAndScoreHotels(query string, hotels []models.Hotel, cmProvince *closestmatch.ClosestMatch) []dto.ScoredHotel {
	var scored []dto.ScoredHotel
	scoreCh := make(chan dto.ScoredHotel, len(hotels))
	var wg sync.WaitGroup

	for _, hotel := range hotels {
		wg.Add(1)
		go func(hotel models.Hotel) {
			defer wg.Done()
			score := calculateHotelScore(query, hotel, cmProvince)
			if score > 0 {
				scoreCh <- dto.ScoredHotel{
					Hotel: toHotelResponse(hotel, false),
					Score: score,
				}
			}
		}(hotel)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for s := range scoreCh {
		scored = append(scored, s)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// SearchHotels is the fuzzy free-text search over the cached catalog
func SearchHotels(c *gin.Context) {
	query := normalizeInput(c.Query("q"))
	if query == "" {
		response.BadRequest(c, "q is required")
		return
	}

	hotels, err := loadHotels()
	if err != nil {
		response.ServerError(c)
		return
	}

	cmProvince := createMatcher(prepareUniqueProvinces(hotels))
	scored := filterAndScoreHotels(query, hotels, cmProvince)

	response.SuccessWithTotal(c, scored, len(scored))
}
