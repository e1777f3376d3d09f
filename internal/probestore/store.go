package probestore

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	_ "modernc.org/sqlite"

	"github.com/AndrewAltimit/sleeper-detect/internal/numerics"
	"github.com/AndrewAltimit/sleeper-detect/internal/probe"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS probes (
	probe_id        TEXT PRIMARY KEY,
	feature_name    TEXT NOT NULL,
	layer           INTEGER NOT NULL,
	classifier_kind TEXT NOT NULL,
	weights         BLOB NOT NULL,
	aux_weights     BLOB,
	bias            REAL NOT NULL,
	threshold       REAL NOT NULL,
	auc_score       REAL NOT NULL,
	tpr             REAL NOT NULL,
	fpr             REAL NOT NULL,
	description     TEXT,
	is_active       INTEGER NOT NULL,
	detection_count INTEGER NOT NULL,
	low_confidence  INTEGER NOT NULL,
	dim             INTEGER NOT NULL,
	scaler_mean     BLOB,
	scaler_std      BLOB,
	updated_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS detection_log (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	probe_id     TEXT NOT NULL,
	feature_name TEXT NOT NULL,
	confidence   REAL NOT NULL,
	detected     INTEGER NOT NULL,
	layer        INTEGER NOT NULL,
	raw_score    REAL NOT NULL,
	created_at   TEXT NOT NULL
);
`

const (
	kindLogistic = "logistic"
	kindCentroid = "centroid"
)

// #endregion schema

// #region store-struct
// Store persists the probe bank and the append-only detection log in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion close

// #region save-probe
// SaveProbe upserts one probe row, classifier parameters included. The
// probe_id primary key gives "latest wins" semantics under the Replace
// overwrite policy; versioned-append IDs never collide so both rows stay.
func (s *Store) SaveProbe(p *probe.Probe) error {
	kind, weights, aux, bias, err := classifierParams(p.Classifier)
	if err != nil {
		return fmt.Errorf("save probe %s: %w", p.ProbeID, err)
	}

	var scalerMean, scalerStd []byte
	if p.Scaler != nil {
		scalerMean = encodeFloats(p.Scaler.Mean)
		scalerStd = encodeFloats(p.Scaler.Std)
	}

	_, err = s.db.Exec(
		`INSERT INTO probes (probe_id, feature_name, layer, classifier_kind, weights, aux_weights, bias,
		                     threshold, auc_score, tpr, fpr, description, is_active, detection_count,
		                     low_confidence, dim, scaler_mean, scaler_std, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(probe_id) DO UPDATE SET
		    feature_name=excluded.feature_name, layer=excluded.layer,
		    classifier_kind=excluded.classifier_kind, weights=excluded.weights,
		    aux_weights=excluded.aux_weights, bias=excluded.bias,
		    threshold=excluded.threshold, auc_score=excluded.auc_score,
		    tpr=excluded.tpr, fpr=excluded.fpr, description=excluded.description,
		    is_active=excluded.is_active, detection_count=excluded.detection_count,
		    low_confidence=excluded.low_confidence, dim=excluded.dim,
		    scaler_mean=excluded.scaler_mean, scaler_std=excluded.scaler_std,
		    updated_at=excluded.updated_at`,
		p.ProbeID, p.FeatureName, p.Layer, kind, weights, aux, bias,
		p.Threshold, p.AUCScore, p.TruePositiveRate, p.FalsePositiveRate,
		p.Description, boolInt(p.IsActive), p.DetectionCount,
		boolInt(p.LowConfidence), p.Dim, scalerMean, scalerStd,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save probe %s: %w", p.ProbeID, err)
	}
	return nil
}

func classifierParams(c numerics.BinaryClassifier) (kind string, weights, aux []byte, bias float64, err error) {
	switch cl := c.(type) {
	case *numerics.LogisticRegression:
		return kindLogistic, encodeFloats(cl.Weights), nil, cl.Bias, nil
	case *numerics.CentroidClassifier:
		pos, neg := cl.Means()
		return kindCentroid, encodeFloats(pos), encodeFloats(neg), 0, nil
	default:
		return "", nil, nil, 0, fmt.Errorf("unsupported classifier type %T", c)
	}
}

// #endregion save-probe

// #region load-probes
// LoadProbes rehydrates every persisted probe, classifier included.
func (s *Store) LoadProbes() ([]*probe.Probe, error) {
	rows, err := s.db.Query(
		`SELECT probe_id, feature_name, layer, classifier_kind, weights, aux_weights, bias,
		        threshold, auc_score, tpr, fpr, description, is_active, detection_count,
		        low_confidence, dim, scaler_mean, scaler_std
		 FROM probes ORDER BY probe_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("load probes: %w", err)
	}
	defer rows.Close()

	var probes []*probe.Probe
	for rows.Next() {
		var p probe.Probe
		var kind string
		var weights, aux, scalerMean, scalerStd []byte
		var bias float64
		var isActive, lowConfidence int
		var description sql.NullString

		if err := rows.Scan(&p.ProbeID, &p.FeatureName, &p.Layer, &kind, &weights, &aux, &bias,
			&p.Threshold, &p.AUCScore, &p.TruePositiveRate, &p.FalsePositiveRate,
			&description, &isActive, &p.DetectionCount, &lowConfidence, &p.Dim,
			&scalerMean, &scalerStd); err != nil {
			return nil, fmt.Errorf("scan probe row: %w", err)
		}

		p.Description = description.String
		p.IsActive = isActive != 0
		p.LowConfidence = lowConfidence != 0

		switch kind {
		case kindLogistic:
			lr := numerics.NewLogisticRegression(numerics.DefaultLogisticConfig())
			lr.Weights = decodeFloats(weights)
			lr.Bias = bias
			p.Classifier = lr
		case kindCentroid:
			p.Classifier = numerics.NewCentroidFromMeans(decodeFloats(weights), decodeFloats(aux))
		default:
			return nil, fmt.Errorf("probe %s: unknown classifier kind %q", p.ProbeID, kind)
		}

		if len(scalerMean) > 0 {
			p.Scaler = &numerics.StandardScaler{
				Mean: decodeFloats(scalerMean),
				Std:  decodeFloats(scalerStd),
			}
		}

		probes = append(probes, &p)
	}
	return probes, rows.Err()
}

// #endregion load-probes

// #region delete-probe
// DeleteProbe removes one probe row. The detection log keeps its entries.
func (s *Store) DeleteProbe(probeID string) error {
	res, err := s.db.Exec(`DELETE FROM probes WHERE probe_id = ?`, probeID)
	if err != nil {
		return fmt.Errorf("delete probe %s: %w", probeID, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("probe %s not found", probeID)
	}
	return nil
}

// #endregion delete-probe

// #region detection-log
// LogDetection appends one detection record to the persistent log.
func (s *Store) LogDetection(d probe.Detection) error {
	_, err := s.db.Exec(
		`INSERT INTO detection_log (probe_id, feature_name, confidence, detected, layer, raw_score, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.ProbeID, d.FeatureName, d.Confidence, boolInt(d.Detected), d.Layer, d.RawScore,
		d.Timestamp.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log detection: %w", err)
	}
	return nil
}

// ListDetections returns the most recent detection records, newest first.
func (s *Store) ListDetections(limit int) ([]probe.Detection, error) {
	rows, err := s.db.Query(
		`SELECT probe_id, feature_name, confidence, detected, layer, raw_score, created_at
		 FROM detection_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list detections: %w", err)
	}
	defer rows.Close()

	var dets []probe.Detection
	for rows.Next() {
		var d probe.Detection
		var detected int
		var createdStr string
		if err := rows.Scan(&d.ProbeID, &d.FeatureName, &d.Confidence, &detected, &d.Layer, &d.RawScore, &createdStr); err != nil {
			return nil, fmt.Errorf("scan detection row: %w", err)
		}
		d.Detected = detected != 0
		d.Timestamp, _ = time.Parse(time.RFC3339Nano, createdStr)
		dets = append(dets, d)
	}
	return dets, rows.Err()
}

// #endregion detection-log

// #region float-encoding
func encodeFloats(v []float64) []byte {
	buf := make([]byte, len(v)*8)
	for i, f := range v {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(f))
	}
	return buf
}

func decodeFloats(b []byte) []float64 {
	v := make([]float64, len(b)/8)
	for i := range v {
		v[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return v
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion float-encoding
