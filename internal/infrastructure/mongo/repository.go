package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"govdataviz/internal/domain"
	"govdataviz/internal/ports"
)

var _ ports.IDatasetRepository = (*DatasetRepo)(nil)

// pointDoc — точка ряда в документе.
type pointDoc struct {
	Date  string  `bson:"date"`
	Value float64 `bson:"value"`
	Label string  `bson:"label,omitempty"`
}

// seriesDoc — документ в коллекции datasets. Ключ — пара (source, series_id).
type seriesDoc struct {
	Source             string     `bson:"source"`
	SeriesID           string     `bson:"series_id"`
	Title              string     `bson:"title"`
	Description        string     `bson:"description,omitempty"`
	Units              string     `bson:"units"`
	Frequency          string     `bson:"frequency"`
	SeasonallyAdjusted bool       `bson:"seasonally_adjusted"`
	LastUpdated        time.Time  `bson:"last_updated"`
	Data               []pointDoc `bson:"data"`
}

// DatasetRepo реализует ports.IDatasetRepository для MongoDB.
type DatasetRepo struct {
	client *Client
	log    *slog.Logger
}

// NewDatasetRepo возвращает репозиторий снимков рядов.
func NewDatasetRepo(client *Client, log *slog.Logger) *DatasetRepo {
	return &DatasetRepo{client: client, log: log}
}

// EnsureIndexes создаёт уникальный индекс (source, series_id). Вызови один раз при старте.
func (r *DatasetRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.client.Coll().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "source", Value: 1}, {Key: "series_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("mongo create index: %w", err)
	}
	return nil
}

// SaveSeries сохраняет снимок ряда; предыдущий снимок того же ряда заменяется.
func (r *DatasetRepo) SaveSeries(ctx context.Context, ts domain.TimeSeries) error {
	doc := toDoc(ts)
	filter := bson.D{{Key: "source", Value: doc.Source}, {Key: "series_id", Value: doc.SeriesID}}
	_, err := r.client.Coll().ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	if err != nil {
		r.log.Debug("SaveSeries failed", "source", ts.Source, "id", ts.ID, "error", err)
		return fmt.Errorf("mongo replace %s/%s: %w", ts.Source, ts.ID, err)
	}
	return nil
}

// ListSeries возвращает снимки (свежие сначала). source пустой — все источники.
func (r *DatasetRepo) ListSeries(ctx context.Context, source string) ([]domain.TimeSeries, error) {
	filter := bson.D{}
	if source != "" {
		filter = bson.D{{Key: "source", Value: source}}
	}
	opts := options.Find().SetSort(bson.D{{Key: "last_updated", Value: -1}})
	cursor, err := r.client.Coll().Find(ctx, filter, opts)
	if err != nil {
		r.log.Debug("ListSeries failed", "error", err)
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []seriesDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo decode: %w", err)
	}
	list := make([]domain.TimeSeries, 0, len(docs))
	for _, d := range docs {
		list = append(list, fromDoc(d))
	}
	return list, nil
}

// GetSeries возвращает снимок ряда или domain.ErrNotFound.
func (r *DatasetRepo) GetSeries(ctx context.Context, source, id string) (*domain.TimeSeries, error) {
	var d seriesDoc
	filter := bson.D{{Key: "source", Value: source}, {Key: "series_id", Value: id}}
	if err := r.client.Coll().FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("dataset %s/%s: %w", source, id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("mongo find one: %w", err)
	}
	ts := fromDoc(d)
	return &ts, nil
}

// Ping проверяет доступность БД.
func (r *DatasetRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

func toDoc(ts domain.TimeSeries) seriesDoc {
	data := make([]pointDoc, 0, len(ts.Data))
	for _, p := range ts.Data {
		data = append(data, pointDoc{Date: p.Date, Value: p.Value, Label: p.Label})
	}
	return seriesDoc{
		Source:             ts.Source,
		SeriesID:           ts.ID,
		Title:              ts.Title,
		Description:        ts.Description,
		Units:              ts.Units,
		Frequency:          ts.Frequency,
		SeasonallyAdjusted: ts.SeasonallyAdjusted,
		LastUpdated:        ts.LastUpdated.UTC(),
		Data:               data,
	}
}

func fromDoc(d seriesDoc) domain.TimeSeries {
	data := make([]domain.DataPoint, 0, len(d.Data))
	for _, p := range d.Data {
		data = append(data, domain.DataPoint{Date: p.Date, Value: p.Value, Label: p.Label})
	}
	return domain.TimeSeries{
		ID:                 d.SeriesID,
		Title:              d.Title,
		Description:        d.Description,
		Units:              d.Units,
		Frequency:          d.Frequency,
		Source:             d.Source,
		LastUpdated:        d.LastUpdated,
		Data:               data,
		SeasonallyAdjusted: d.SeasonallyAdjusted,
	}
}
