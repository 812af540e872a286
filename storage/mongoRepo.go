package storage

import (
	"context"
	"errors"
	"time"

	"calllog-backend/models"
	"calllog-backend/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoOpTimeout = 5 * time.Second

// MongoRepo is the document Repository implementation. Collection and field
// names match the legacy deployment so an existing database keeps working.
type MongoRepo struct {
	client  *mongo.Client
	db      *mongo.Database
	master  *mongo.Collection
	calllog *mongo.Collection
	users   *mongo.Collection
}

// NewMongoRepo wires the collections and ensures the uniqueness indexes that
// back the MobileNo and Username invariants. Index creation is idempotent.
func NewMongoRepo(client *mongo.Client, dbName string) (*MongoRepo, error) {
	db := client.Database(dbName)
	r := &MongoRepo{
		client:  client,
		db:      db,
		master:  db.Collection("master"),
		calllog: db.Collection("callLogEntries"),
		users:   db.Collection("users"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)
	if _, err := r.master.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "MobileNo", Value: 1}}, Options: unique,
	}); err != nil {
		return nil, err
	}
	if _, err := r.calllog.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "Date", Value: 1}},
	}); err != nil {
		return nil, err
	}
	if _, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true),
	}); err != nil {
		return nil, err
	}
	return r, nil
}

func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), mongoOpTimeout)
}

func translateMongo(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	}
	return err
}

func oid(id string) (primitive.ObjectID, error) {
	v, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return v, nil
}

// masterFields builds the $set payload for a master update.
func masterFields(rec *models.Master) bson.M {
	return bson.M{
		"MobileNo":    rec.MobileNo,
		"Project":     rec.Project,
		"TownType":    rec.TownType,
		"Requester":   rec.Requester,
		"RDCode":      rec.RDCode,
		"RDName":      rec.RDName,
		"Town":        rec.Town,
		"State":       rec.State,
		"Designation": rec.Designation,
		"Name":        rec.Name,
		"GSTNo":       rec.GSTNo,
		"EmailID":     rec.EmailID,
	}
}

// ---- Master ----

func (r *MongoRepo) ListMasters() ([]models.Master, error) {
	ctx, cancel := opCtx()
	defer cancel()
	cur, err := r.master.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "MobileNo", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var recs []models.Master
	if err := cur.All(ctx, &recs); err != nil {
		return nil, err
	}
	for i := range recs {
		recs[i].ID = recs[i].OID.Hex()
	}
	return recs, nil
}

func (r *MongoRepo) GetMaster(id string) (*models.Master, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := opCtx()
	defer cancel()
	var rec models.Master
	if err := r.master.FindOne(ctx, bson.M{"_id": objID}).Decode(&rec); err != nil {
		return nil, translateMongo(err)
	}
	rec.ID = rec.OID.Hex()
	return &rec, nil
}

func (r *MongoRepo) GetMasterByMobile(mobileNo string) (*models.Master, error) {
	ctx, cancel := opCtx()
	defer cancel()
	var rec models.Master
	if err := r.master.FindOne(ctx, bson.M{"MobileNo": utils.Clean(mobileNo)}).Decode(&rec); err != nil {
		return nil, translateMongo(err)
	}
	rec.ID = rec.OID.Hex()
	return &rec, nil
}

func (r *MongoRepo) CreateMaster(rec *models.Master) (string, error) {
	utils.TrimStrings(rec)
	if rec.UID == "" {
		rec.UID = models.NewUID()
	}
	now := time.Now().UTC()
	rec.CreatedAt, rec.UpdatedAt = now, now

	ctx, cancel := opCtx()
	defer cancel()
	res, err := r.master.InsertOne(ctx, rec)
	if err != nil {
		return "", translateMongo(err)
	}
	rec.OID = res.InsertedID.(primitive.ObjectID)
	rec.ID = rec.OID.Hex()
	return rec.ID, nil
}

func (r *MongoRepo) UpdateMaster(id string, rec *models.Master) error {
	objID, err := oid(id)
	if err != nil {
		return err
	}
	utils.TrimStrings(rec)
	set := masterFields(rec)
	set["UpdatedDate"] = time.Now().UTC()

	ctx, cancel := opCtx()
	defer cancel()
	res, err := r.master.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return translateMongo(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepo) DeleteMaster(id string) error {
	objID, err := oid(id)
	if err != nil {
		return err
	}
	ctx, cancel := opCtx()
	defer cancel()
	res, err := r.master.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepo) ReplaceAllMasters(recs []models.Master) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if _, err := r.master.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, err
	}
	if len(recs) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, 0, len(recs))
	now := time.Now().UTC()
	for i := range recs {
		utils.TrimStrings(&recs[i])
		if recs[i].UID == "" {
			recs[i].UID = models.NewUID()
		}
		recs[i].CreatedAt, recs[i].UpdatedAt = now, now
		docs = append(docs, recs[i])
	}
	res, err := r.master.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	inserted := 0
	if res != nil {
		inserted = len(res.InsertedIDs)
	}
	if err != nil {
		return inserted, translateMongo(err)
	}
	return inserted, nil
}

// ---- Call log ----

func (r *MongoRepo) CreateCallLog(rec *models.CallLogEntry) (string, error) {
	utils.TrimStrings(rec)
	if rec.UID == "" {
		rec.UID = models.NewUID()
	}
	now := time.Now().UTC()
	if rec.Date.IsZero() {
		rec.Date = now
	}
	rec.CreatedAt, rec.UpdatedAt = now, now

	ctx, cancel := opCtx()
	defer cancel()
	res, err := r.calllog.InsertOne(ctx, rec)
	if err != nil {
		return "", translateMongo(err)
	}
	rec.OID = res.InsertedID.(primitive.ObjectID)
	rec.ID = rec.OID.Hex()
	return rec.ID, nil
}

func (r *MongoRepo) ListCallLogs(dr DateRange) ([]models.CallLogEntry, error) {
	filter := bson.M{}
	if dr.Start != nil || dr.End != nil {
		dateFilter := bson.M{}
		if dr.Start != nil {
			dateFilter["$gte"] = *dr.Start
		}
		if dr.End != nil {
			dateFilter["$lte"] = *dr.End
		}
		filter["Date"] = dateFilter
	}

	ctx, cancel := opCtx()
	defer cancel()
	cur, err := r.calllog.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "Date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var recs []models.CallLogEntry
	if err := cur.All(ctx, &recs); err != nil {
		return nil, err
	}
	for i := range recs {
		recs[i].ID = recs[i].OID.Hex()
	}
	return recs, nil
}

// ---- Users ----

func (r *MongoRepo) ListUsers() ([]models.User, error) {
	ctx, cancel := opCtx()
	defer cancel()
	cur, err := r.users.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "username", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoRepo) GetUserByUsername(username string) (*models.User, error) {
	ctx, cancel := opCtx()
	defer cancel()
	var user models.User
	if err := r.users.FindOne(ctx, bson.M{"username": utils.Clean(username)}).Decode(&user); err != nil {
		return nil, translateMongo(err)
	}
	return &user, nil
}

func (r *MongoRepo) CreateUser(rec *models.User) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	rec.CreatedAt, rec.UpdatedAt = now, now

	ctx, cancel := opCtx()
	defer cancel()
	if _, err := r.users.InsertOne(ctx, rec); err != nil {
		return "", translateMongo(err)
	}
	return rec.ID, nil
}

func (r *MongoRepo) UpdateUserPassword(id string, hashed []byte) error {
	ctx, cancel := opCtx()
	defer cancel()
	res, err := r.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"password":    hashed,
		"UpdatedDate": time.Now().UTC(),
	}})
	if err != nil {
		return translateMongo(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepo) DeleteUser(id string) error {
	ctx, cancel := opCtx()
	defer cancel()
	res, err := r.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- Email configuration ----

const emailConfigID = "email_settings"

func (r *MongoRepo) GetEmailConfig() (*models.EmailConfig, error) {
	ctx, cancel := opCtx()
	defer cancel()
	var cfg models.EmailConfig
	err := r.db.Collection("emailConfig").FindOne(ctx, bson.M{"_id": emailConfigID}).Decode(&cfg)
	if err != nil {
		return nil, translateMongo(err)
	}
	return &cfg, nil
}

func (r *MongoRepo) SaveEmailConfig(cfg *models.EmailConfig) error {
	ctx, cancel := opCtx()
	defer cancel()
	_, err := r.db.Collection("emailConfig").UpdateOne(ctx,
		bson.M{"_id": emailConfigID},
		bson.M{"$set": bson.M{
			"smtp_server":   cfg.SMTPServer,
			"smtp_port":     cfg.SMTPPort,
			"smtp_user":     cfg.SMTPUser,
			"smtp_password": cfg.SMTPPassword,
			"UpdatedDate":   time.Now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *MongoRepo) DeleteEmailConfig() error {
	ctx, cancel := opCtx()
	defer cancel()
	_, err := r.db.Collection("emailConfig").DeleteOne(ctx, bson.M{"_id": emailConfigID})
	return err
}

// ---- Dropdown value lists ----

const dropdownConfigID = "dropdown_values"

func (r *MongoRepo) GetMiscData() (*models.MiscData, error) {
	ctx, cancel := opCtx()
	defer cancel()
	var data models.MiscData
	err := r.db.Collection("miscData").FindOne(ctx, bson.M{"_id": dropdownConfigID}).Decode(&data)
	if err != nil {
		return nil, translateMongo(err)
	}
	return &data, nil
}

func (r *MongoRepo) SaveMiscData(data *models.MiscData) error {
	ctx, cancel := opCtx()
	defer cancel()
	_, err := r.db.Collection("miscData").UpdateOne(ctx,
		bson.M{"_id": dropdownConfigID},
		bson.M{
			"$set":         data,
			"$currentDate": bson.M{"UpdatedDate": true},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// ---- Active settings ----

func (r *MongoRepo) SaveAppSettings(settings *models.AppSettings) error {
	settings.CreatedAt = time.Now().UTC()
	ctx, cancel := opCtx()
	defer cancel()
	_, err := r.db.Collection("appConfig").UpdateOne(ctx,
		bson.M{"_id": "active"},
		bson.M{"$set": settings},
		options.Update().SetUpsert(true),
	)
	return err
}

// ---- Lifecycle ----

func (r *MongoRepo) Ping() error {
	ctx, cancel := opCtx()
	defer cancel()
	return r.client.Ping(ctx, nil)
}

func (r *MongoRepo) Close() error {
	ctx, cancel := opCtx()
	defer cancel()
	return r.client.Disconnect(ctx)
}
