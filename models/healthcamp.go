package models

type HealthCamp struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Location    string `json:"location" bson:"location"`
	Date        string `json:"date" bson:"date"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	CreatedBy   string `json:"createdBy" bson:"createdBy"`
}
