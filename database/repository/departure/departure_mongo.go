// File: database/repository/departure/departure_mongo.go
package departureRepo

import (
	"contour/database"

	"go.mongodb.org/mongo-driver/mongo"
)

type MongoGroupDepartureRepo struct {
	coll *mongo.Collection
}

// NewMongoGroupDepartureRepo constructs a new MongoDB GroupDepartureRepository.
func NewMongoGroupDepartureRepo() GroupDepartureRepository {
	return &MongoGroupDepartureRepo{
		coll: database.DB().Collection("groupdepartures"),
	}
}

type MongoPrivateDepartureRepo struct {
	coll *mongo.Collection
}

// NewMongoPrivateDepartureRepo constructs a new MongoDB PrivateDepartureRepository.
func NewMongoPrivateDepartureRepo() PrivateDepartureRepository {
	return &MongoPrivateDepartureRepo{
		coll: database.DB().Collection("privatedepartures"),
	}
}
