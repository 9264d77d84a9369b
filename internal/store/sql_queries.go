package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/blueprint-utils/internal/config"
	"github.com/MKhiriev/blueprint-utils/models"
)

const likeEscape = `\`

// quoteIdent quotes a table or column name. Both supported dialects accept
// double-quoted identifiers.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// escapeLike escapes LIKE wildcards so that value matches literally.
func escapeLike(value string) string {
	r := strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")
	return r.Replace(value)
}

// buildCountQuery builds SELECT COUNT(*) over table restricted by where.
func (db *DB) buildCountQuery(table string, where sq.Sqlizer) (string, []any, error) {
	q := db.builder.Select("COUNT(*)").From(quoteIdent(table))
	if where != nil {
		q = q.Where(where)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildFindOneQuery selects the primary key of the first record of m
// matching criteria.
func (db *DB) buildFindOneQuery(m *models.Model, criteria models.Criteria) (string, []any, error) {
	where, err := db.whereClause(m, criteria)
	if err != nil {
		return "", nil, err
	}

	pk, _ := m.Column(m.PK())
	q := db.builder.Select(quoteIdent(pk)).From(quoteIdent(m.Table())).Limit(1)
	if where != nil {
		q = q.Where(where)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// whereClause converts criteria into a conjunction of squirrel predicates.
// It returns nil for empty criteria.
func (db *DB) whereClause(m *models.Model, criteria models.Criteria) (sq.Sqlizer, error) {
	if len(criteria) == 0 {
		return nil, nil
	}

	and := make(sq.And, 0, len(criteria))
	for _, cond := range criteria {
		column, ok := m.Column(cond.Attribute)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownColumn, m.Identity, cond.Attribute)
		}

		pred, err := db.predicate(quoteIdent(column), cond)
		if err != nil {
			return nil, err
		}
		and = append(and, pred)
	}

	return and, nil
}

func (db *DB) predicate(column string, cond models.Condition) (sq.Sqlizer, error) {
	switch cond.Operator {
	case models.OpEq, models.OpIn:
		return sq.Eq{column: cond.Value}, nil
	case models.OpNotEq, models.OpNotIn:
		return sq.NotEq{column: cond.Value}, nil
	case models.OpLt:
		return sq.Lt{column: cond.Value}, nil
	case models.OpLtOrEq:
		return sq.LtOrEq{column: cond.Value}, nil
	case models.OpGt:
		return sq.Gt{column: cond.Value}, nil
	case models.OpGtOrEq:
		return sq.GtOrEq{column: cond.Value}, nil
	case models.OpContains, models.OpStartsWith, models.OpEndsWith, models.OpLike:
		value, ok := cond.Value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s expects a string", ErrBuildingSQLQuery, cond.Operator)
		}
		return db.like(column, cond.Operator, value), nil
	default:
		return nil, fmt.Errorf("%w: unsupported operator %q", ErrBuildingSQLQuery, cond.Operator)
	}
}

// like matches case-insensitively on both dialects: ILIKE on postgres, LIKE
// on sqlite (ASCII case-insensitive by default).
func (db *DB) like(column string, op models.Operator, value string) sq.Sqlizer {
	pattern := value
	switch op {
	case models.OpContains:
		pattern = "%" + escapeLike(value) + "%"
	case models.OpStartsWith:
		pattern = escapeLike(value) + "%"
	case models.OpEndsWith:
		pattern = "%" + escapeLike(value)
	}

	keyword := "LIKE"
	if db.driver == config.DriverPostgres {
		keyword = "ILIKE"
	}

	return sq.Expr(column+" "+keyword+" ? ESCAPE '"+likeEscape+"'", pattern)
}
