// internal/model/influencer.go
package model

type Platforms struct {
    Instagram string `json:"instagram,omitempty"`
    YouTube   string `json:"youtube,omitempty"`
}

// Influencer.CreatedBy is the ownership key: stamped from the session email
// when the record is created and never changed by later edits.
type Influencer struct {
    ID            string     `json:"id"`
    Name          string     `json:"name"`
    Handle        string     `json:"handle"`
    Avatar        string     `json:"avatar"`
    Followers     string     `json:"followers"`
    Category      string     `json:"category"`
    Email         string     `json:"email,omitempty"`
    Mobile        string     `json:"mobile,omitempty"`
    Location      string     `json:"location,omitempty"`
    Language      string     `json:"language,omitempty"`
    LastPricePaid float64    `json:"lastPricePaid,omitempty"`
    LastPromoDate string     `json:"lastPromoDate,omitempty"`
    Platforms     *Platforms `json:"platforms,omitempty"`
    CreatedBy     string     `json:"createdBy,omitempty"`
}
