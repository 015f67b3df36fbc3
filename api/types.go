package api

// Room field names follow the backend's JSON contract, which mixes camel
// case and snake case for historical reasons.
type Room struct {
	ID                      int      `json:"id"`
	Cost                    float64  `json:"cost"`
	RoomType                string   `json:"roomType"`
	NumOfPeople             int      `json:"numOfPeople"`
	MaxNumOfPeople          int      `json:"maxNumOfPeople"`
	AdditionalCostPerPerson float64  `json:"additionalCostPerPerson"`
	NumOfBeds               int      `json:"numOfBeds"`
	NumOfBathrooms          int      `json:"numOfBathrooms"`
	NumOfBedrooms           int      `json:"numOfBedrooms"`
	RoomArea                int      `json:"roomArea"`
	LivingRoomInfo          string   `json:"livingRoomInfo"`
	Heating                 bool     `json:"heating"`
	Description             string   `json:"description"`
	Rules                   string   `json:"rules"`
	CountryID               int      `json:"countryId"`
	StateID                 int      `json:"stateId"`
	CityID                  int      `json:"cityId"`
	OpenStreetMapX          float64  `json:"openStreetMapX"`
	OpenStreetMapY          float64  `json:"openStreetMapY"`
	OpenStreetMapLabel      string   `json:"openStreetMapLabel"`
	ReviewScoresRating      float64  `json:"review_scores_rating"`
	NumberOfReviews         int      `json:"number_of_reviews"`
	ThumbnailImg            *string  `json:"thumbnail_img"`
	LandlordID              int      `json:"userId"`
}

type User struct {
	ID         int     `json:"id"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Lastname   string  `json:"lastname"`
	Telephone  string  `json:"telephone"`
	IsAdmin    bool    `json:"isAdmin"`
	IsTenant   bool    `json:"isTenant"`
	IsLandlord bool    `json:"isLandlord"`
	Active     bool    `json:"active"`
	ProfileImg *string `json:"profile_img"`
	CreatedAt  string  `json:"createdAt"`
}

type Booking struct {
	ID      int    `json:"id"`
	InDate  string `json:"InDate"`
	OutDate string `json:"OutDate"`
	RoomID  int    `json:"roomId"`
	UserID  int    `json:"userId"`
}

type Review struct {
	ID           int    `json:"id,omitempty"`
	Date         string `json:"date"`
	Score        int    `json:"score"`
	ReviewerName string `json:"reviewer_name"`
	Comments     string `json:"comments"`
	UserID       int    `json:"userId"`
	RoomID       int    `json:"roomId"`
}

// SearchFilters is the sparse body of getAvailableRoomsByFilters. The people
// count and the stay dates are always sent; every other field is present
// only when the corresponding facet was actually constrained. Heating is a
// pointer because false is a real constraint, not an absence.
type SearchFilters struct {
	NumOfPeople    int    `json:"numOfPeople"`
	InDate         string `json:"InDate"`
	OutDate        string `json:"OutDate"`
	CountryID      int    `json:"countryId,omitempty"`
	StateID        int    `json:"stateId,omitempty"`
	CityID         int    `json:"cityId,omitempty"`
	RoomType       string `json:"roomType,omitempty"`
	MaxCost        int    `json:"maxCost,omitempty"`
	Heating        *bool  `json:"heating,omitempty"`
	NumOfBeds      int    `json:"numOfBeds,omitempty"`
	NumOfBathrooms int    `json:"numOfBathrooms,omitempty"`
	NumOfBedrooms  int    `json:"numOfBedrooms,omitempty"`
	MinArea        int    `json:"minArea,omitempty"`
	MaxArea        int    `json:"maxArea,omitempty"`
}

// HasLocation reports whether all three location facets were constrained,
// which is what gates the search-history feed to the recommender.
func (f SearchFilters) HasLocation() bool {
	return f.CountryID != 0 && f.StateID != 0 && f.CityID != 0
}
