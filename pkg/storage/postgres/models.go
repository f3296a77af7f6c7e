package postgres

import (
	"cmsscan/pkg/domain"
	"cmsscan/pkg/serrors"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PgLineResult struct {
	ID       uuid.UUID `db:"id"       goqu:"skipinsert"`
	BatchID  uuid.UUID `db:"batch_id"`
	Position int       `db:"position"`

	Line         string `db:"line"`
	TargetURL    string `db:"target_url"`
	HostOverride string `db:"host_override"`

	Status     string `db:"status"`
	BaseURL    string `db:"base_url"`
	Redirected bool   `db:"redirected"`
	Generator  string `db:"generator"`

	// Tally and Versions hold JSON documents; NULL for failed lines.
	Tally    sql.NullString `db:"tally"`
	Versions sql.NullString `db:"versions"`

	ErrorKind sql.NullString `db:"error_kind"`
	Error     sql.NullString `db:"error"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgLineResult) ToDomain() (*domain.LineResult, error) {
	res := &domain.LineResult{
		Line: p.Line,
		Target: domain.ScanLine{
			TargetURL:    p.TargetURL,
			HostOverride: p.HostOverride,
		},
		Status:     domain.LineStatus(p.Status),
		BaseURL:    p.BaseURL,
		Redirected: p.Redirected,
		Generator:  p.Generator,
	}

	if p.Tally.Valid {
		var tally domain.IdentificationTally
		if err := json.Unmarshal([]byte(p.Tally.String), &tally); err != nil {
			return nil, fmt.Errorf("could not unmarshal tally: %w", err)
		}
		res.Tally = &tally
	}
	if p.Versions.Valid {
		if err := json.Unmarshal([]byte(p.Versions.String), &res.Versions); err != nil {
			return nil, fmt.Errorf("could not unmarshal versions: %w", err)
		}
	}

	if p.Error.Valid {
		if k := serrors.LookupKind(p.ErrorKind.String); k != nil {
			res.Err = serrors.With(k, "%s", p.Error.String)
		} else {
			res.Err = errors.New(p.Error.String)
		}
	}

	return res, nil
}

func (p *PgLineResult) FromDomain(batchID domain.BatchID, position int, res domain.LineResult) error {
	*p = PgLineResult{
		BatchID:      uuid.UUID(batchID),
		Position:     position,
		Line:         res.Line,
		TargetURL:    res.Target.TargetURL,
		HostOverride: res.Target.HostOverride,
		Status:       string(res.Status),
		BaseURL:      res.BaseURL,
		Redirected:   res.Redirected,
		Generator:    res.Generator,
	}

	if res.Tally != nil {
		b, err := json.Marshal(res.Tally)
		if err != nil {
			return fmt.Errorf("could not marshal tally: %w", err)
		}
		p.Tally = sql.NullString{String: string(b), Valid: true}
	}
	if res.Versions != nil {
		b, err := json.Marshal(res.Versions)
		if err != nil {
			return fmt.Errorf("could not marshal versions: %w", err)
		}
		p.Versions = sql.NullString{String: string(b), Valid: true}
	}

	if res.Err != nil {
		p.Error = sql.NullString{String: res.Err.Error(), Valid: true}
		p.ErrorKind = sql.NullString{String: serrors.KindOf(res.Err).Error(), Valid: true}
	}

	return nil
}

func domainResultsToPg(batchID domain.BatchID, results []domain.LineResult) ([]PgLineResult, error) {
	out := make([]PgLineResult, len(results))
	for i := range out {
		if err := out[i].FromDomain(batchID, i, results[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgResultsToDomain(rows []PgLineResult) ([]domain.LineResult, error) {
	out := make([]domain.LineResult, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
