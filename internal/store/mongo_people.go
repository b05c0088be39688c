// server/internal/store/mongo_people.go
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taller-api-server/internal/models"
)

type MongoProfileStore struct {
	collection *mongo.Collection
}

func NewMongoProfileStore(db *mongo.Database) *MongoProfileStore {
	return &MongoProfileStore{collection: db.Collection("user_profiles")}
}

func (s *MongoProfileStore) Create(ctx context.Context, p *models.UserProfile) error {
	_, err := s.collection.InsertOne(ctx, p)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (s *MongoProfileStore) GetByUsername(ctx context.Context, username string) (*models.UserProfile, error) {
	var p models.UserProfile
	err := s.collection.FindOne(ctx, bson.M{"username": username}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *MongoProfileStore) GetByProfileID(ctx context.Context, profileID string) (*models.UserProfile, error) {
	var p models.UserProfile
	err := s.collection.FindOne(ctx, bson.M{"profileID": profileID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *MongoProfileStore) FirstByRole(ctx context.Context, role models.Role) (*models.UserProfile, error) {
	opts := options.FindOne().SetSort(bson.M{"createdAt": 1})
	var p models.UserProfile
	err := s.collection.FindOne(ctx, bson.M{"role": role, "status": "active"}, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type MongoMechanicStore struct {
	collection *mongo.Collection
}

func NewMongoMechanicStore(db *mongo.Database) *MongoMechanicStore {
	return &MongoMechanicStore{collection: db.Collection("mechanics")}
}

func (s *MongoMechanicStore) Create(ctx context.Context, m *models.Mechanic) error {
	_, err := s.collection.InsertOne(ctx, m)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (s *MongoMechanicStore) GetByMechanicID(ctx context.Context, mechanicID string) (*models.Mechanic, error) {
	var m models.Mechanic
	err := s.collection.FindOne(ctx, bson.M{"mechanicID": mechanicID}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MongoMechanicStore) GetByProfileID(ctx context.Context, profileID string) (*models.Mechanic, error) {
	var m models.Mechanic
	err := s.collection.FindOne(ctx, bson.M{"profileID": profileID}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MongoMechanicStore) List(ctx context.Context) ([]models.Mechanic, error) {
	opts := options.Find().SetSort(bson.M{"mechanicID": 1})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var mechanics []models.Mechanic
	if err := cursor.All(ctx, &mechanics); err != nil {
		return nil, err
	}
	return mechanics, nil
}

type MongoZoneStore struct {
	collection *mongo.Collection
}

func NewMongoZoneStore(db *mongo.Database) *MongoZoneStore {
	return &MongoZoneStore{collection: db.Collection("work_zones")}
}

func (s *MongoZoneStore) Create(ctx context.Context, z *models.WorkZone) error {
	_, err := s.collection.InsertOne(ctx, z)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (s *MongoZoneStore) GetByZoneID(ctx context.Context, zoneID string) (*models.WorkZone, error) {
	var z models.WorkZone
	err := s.collection.FindOne(ctx, bson.M{"zoneID": zoneID}).Decode(&z)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &z, nil
}

func (s *MongoZoneStore) ListActive(ctx context.Context) ([]models.WorkZone, error) {
	opts := options.Find().SetSort(bson.M{"zoneID": 1})
	cursor, err := s.collection.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var zones []models.WorkZone
	if err := cursor.All(ctx, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

type MongoClientStore struct {
	collection *mongo.Collection
}

func NewMongoClientStore(db *mongo.Database) *MongoClientStore {
	return &MongoClientStore{collection: db.Collection("clients")}
}

func (s *MongoClientStore) Create(ctx context.Context, c *models.Client) error {
	_, err := s.collection.InsertOne(ctx, c)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (s *MongoClientStore) GetByRUT(ctx context.Context, rut string) (*models.Client, error) {
	var c models.Client
	err := s.collection.FindOne(ctx, bson.M{"rut": rut}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *MongoClientStore) List(ctx context.Context) ([]models.Client, error) {
	opts := options.Find().SetSort(bson.M{"rut": 1})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

type MongoVehicleStore struct {
	collection *mongo.Collection
}

func NewMongoVehicleStore(db *mongo.Database) *MongoVehicleStore {
	return &MongoVehicleStore{collection: db.Collection("vehicles")}
}

func (s *MongoVehicleStore) Create(ctx context.Context, v *models.Vehicle) error {
	_, err := s.collection.InsertOne(ctx, v)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (s *MongoVehicleStore) GetByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	var v models.Vehicle
	err := s.collection.FindOne(ctx, bson.M{"plate": plate}).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *MongoVehicleStore) ListByClient(ctx context.Context, rut string) ([]models.Vehicle, error) {
	opts := options.Find().SetSort(bson.M{"plate": 1})
	cursor, err := s.collection.Find(ctx, bson.M{"clientRUT": rut}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var vehicles []models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

type MongoCatalogStore struct {
	brands      *mongo.Collection
	vmodels     *mongo.Collection
	specialties *mongo.Collection
	services    *mongo.Collection
	suppliers   *mongo.Collection
}

func NewMongoCatalogStore(db *mongo.Database) *MongoCatalogStore {
	return &MongoCatalogStore{
		brands:      db.Collection("vehicle_brands"),
		vmodels:     db.Collection("vehicle_models"),
		specialties: db.Collection("specialties"),
		services:    db.Collection("catalog_services"),
		suppliers:   db.Collection("suppliers"),
	}
}

func (s *MongoCatalogStore) CreateBrand(ctx context.Context, b *models.VehicleBrand) error {
	_, err := s.brands.InsertOne(ctx, b)
	return err
}

func (s *MongoCatalogStore) ListBrands(ctx context.Context) ([]models.VehicleBrand, error) {
	cursor, err := s.brands.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var brands []models.VehicleBrand
	if err := cursor.All(ctx, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (s *MongoCatalogStore) CreateModel(ctx context.Context, m *models.VehicleModel) error {
	_, err := s.vmodels.InsertOne(ctx, m)
	return err
}

func (s *MongoCatalogStore) ListModelsByBrand(ctx context.Context, brand string) ([]models.VehicleModel, error) {
	cursor, err := s.vmodels.Find(ctx, bson.M{"brand": brand}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var vehicleModels []models.VehicleModel
	if err := cursor.All(ctx, &vehicleModels); err != nil {
		return nil, err
	}
	return vehicleModels, nil
}

func (s *MongoCatalogStore) CreateSpecialty(ctx context.Context, sp *models.Specialty) error {
	_, err := s.specialties.InsertOne(ctx, sp)
	return err
}

func (s *MongoCatalogStore) ListSpecialties(ctx context.Context) ([]models.Specialty, error) {
	cursor, err := s.specialties.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var specialties []models.Specialty
	if err := cursor.All(ctx, &specialties); err != nil {
		return nil, err
	}
	return specialties, nil
}

func (s *MongoCatalogStore) CreateService(ctx context.Context, svc *models.CatalogService) error {
	_, err := s.services.InsertOne(ctx, svc)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (s *MongoCatalogStore) GetServiceByName(ctx context.Context, name string) (*models.CatalogService, error) {
	var svc models.CatalogService
	err := s.services.FindOne(ctx, bson.M{"name": name}).Decode(&svc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *MongoCatalogStore) ListServices(ctx context.Context) ([]models.CatalogService, error) {
	cursor, err := s.services.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.CatalogService
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (s *MongoCatalogStore) CreateSupplier(ctx context.Context, sup *models.Supplier) error {
	_, err := s.suppliers.InsertOne(ctx, sup)
	return err
}

func (s *MongoCatalogStore) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	cursor, err := s.suppliers.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var suppliers []models.Supplier
	if err := cursor.All(ctx, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}
