package handlers

// Тела запросов REST API. Имена полей совпадают с тем, что отправляет фронтенд.

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Phone    string `json:"phone" validate:"required,max=32"`
	Password string `json:"password" validate:"required,max=128"`
	Role     string `json:"role" validate:"omitempty,oneof=Farmer Buyer Admin"`
	Location string `json:"location" validate:"max=200"`
	Avatar   string `json:"avatar"`
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type profileRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Location *string `json:"location" validate:"omitempty,max=200"`
	Avatar   *string `json:"avatar"`
	Role     *string `json:"role" validate:"omitempty,oneof=Farmer Buyer Admin"`
}

type createPostRequest struct {
	User         string `json:"user" validate:"required,max=100"`
	Role         string `json:"role" validate:"omitempty,oneof=Farmer Buyer Admin"`
	Initial      string `json:"initial" validate:"max=8"`
	Color        string `json:"color" validate:"max=32"`
	UserAvatar   string `json:"userAvatar"`
	Text         string `json:"text" validate:"max=10000"`
	MediaType    string `json:"mediaType" validate:"omitempty,oneof=image video"`
	MediaSrc     string `json:"mediaSrc"`
	MarketStatus string `json:"marketStatus" validate:"omitempty,oneof=available sold-out"`
	SharedPost   string `json:"sharedPost"`
}

type reactRequest struct {
	UserID string `json:"userId" validate:"required,max=100"`
	Type   string `json:"type" validate:"omitempty,max=32"`
}

type commentRequest struct {
	User       string `json:"user" validate:"required,max=100"`
	Text       string `json:"text" validate:"required,max=5000"`
	UserAvatar string `json:"userAvatar"`
}

type replyRequest struct {
	User       string `json:"user" validate:"required,max=100"`
	Text       string `json:"text" validate:"required,max=5000"`
	UserAvatar string `json:"userAvatar"`
	ReplyToID  string `json:"replyToId"`
}

type shareRequest struct {
	User       string `json:"user" validate:"required,max=100"`
	Initial    string `json:"initial" validate:"max=8"`
	Color      string `json:"color" validate:"max=32"`
	UserAvatar string `json:"userAvatar"`
	Text       string `json:"text" validate:"max=10000"`
}

// ownerRequest — тело DELETE-запросов: владелец по имени.
type ownerRequest struct {
	User   string `json:"user"`
	UserID string `json:"userId"`
}

type listingRequest struct {
	User        string  `json:"user" validate:"required,max=100"`
	Name        string  `json:"name" validate:"required,max=100"`
	Qty         float64 `json:"qty" validate:"gte=0"`
	Price       float64 `json:"price" validate:"gte=0"`
	Icon        string  `json:"icon" validate:"max=64"`
	Color       string  `json:"color" validate:"max=32"`
	Contact     string  `json:"contact" validate:"required,max=64"`
	Notes       string  `json:"notes" validate:"max=2000"`
	ImageURL    *string `json:"imageUrl"`
	SoldOut     bool    `json:"soldOut"`
	ShareToFeed bool    `json:"shareToFeed"`
}

type listingPatchRequest struct {
	User        *string  `json:"user"`
	UserID      *string  `json:"userId"`
	Name        *string  `json:"name" validate:"omitempty,max=100"`
	Qty         *float64 `json:"qty" validate:"omitempty,gte=0"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Icon        *string  `json:"icon" validate:"omitempty,max=64"`
	Color       *string  `json:"color" validate:"omitempty,max=32"`
	Contact     *string  `json:"contact" validate:"omitempty,max=64"`
	Notes       *string  `json:"notes" validate:"omitempty,max=2000"`
	ImageURL    *string  `json:"imageUrl"`
	SoldOut     *bool    `json:"soldOut"`
	ShareToFeed *bool    `json:"shareToFeed"`
}

type deviceRequest struct {
	User          string   `json:"user"`
	UserID        string   `json:"userId"`
	DeviceID      string   `json:"deviceId"`
	WaterLevel    *float64 `json:"waterLevel" validate:"omitempty,gte=0,lte=100"`
	IsPumpRunning *bool    `json:"isPumpRunning"`
}

type detectRequest struct {
	Image string `json:"image"`
}

type mediaRequest struct {
	Image string `json:"image" validate:"required"`
}
