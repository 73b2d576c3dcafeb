package api

type HatchReq struct {
	OwnerId string `json:"ownerId"`
	PetName string `json:"petName"`
}

type FeedReq struct {
	OwnerId   string `json:"ownerId"`
	PetName   string `json:"petName"`
	FruitName string `json:"fruitName"`
	Quantity  int64  `json:"quantity"`
}

type AdjustInventoryReq struct {
	OwnerId string           `json:"ownerId"`
	Deltas  map[string]int64 `json:"deltas"`
}

type LifecycleCheckReq struct {
	OwnerId string `json:"ownerId"`
	PetName string `json:"petName"`
}

type SetHappinessReq struct {
	OwnerId string `json:"ownerId"`
	PetName string `json:"petName"`
	Value   int64  `json:"value"`
}

type SetGradeReq struct {
	OwnerId  string `json:"ownerId"`
	PetName  string `json:"petName"`
	StatName string `json:"statName"`
	Grade    string `json:"grade"`
}

type SetExpReq struct {
	OwnerId  string `json:"ownerId"`
	PetName  string `json:"petName"`
	StatName string `json:"statName"`
	Exp      int64  `json:"exp"`
}

type SetLevelReq struct {
	OwnerId  string `json:"ownerId"`
	PetName  string `json:"petName"`
	StatName string `json:"statName"`
	Level    int64  `json:"level"`
}

type SetFaceReq struct {
	OwnerId string `json:"ownerId"`
	PetName string `json:"petName"`
	Eyes    string `json:"eyes"`
	Mouth   string `json:"mouth"`
}
