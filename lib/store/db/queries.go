package db

import (
	"context"
	"database/sql"
)

type UnEducation struct {
	Country string
	Year    int64
	Men     int64
	Women   int64
}

type Gdp struct {
	Country string
	Year    int64
	Gdp     sql.NullFloat64
}

type JoinedRow struct {
	Country string
	Year    int64
	Men     int64
	Women   int64
	Gdp     float64
}

const deleteEducation = `delete from un_education`

func (q *Queries) DeleteEducation(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteEducation)
	return err
}

const deleteGdp = `delete from gdp`

func (q *Queries) DeleteGdp(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteGdp)
	return err
}

const createEducation = `insert into un_education (country, year, men, women) values (?, ?, ?, ?)`

func (q *Queries) CreateEducation(ctx context.Context, arg UnEducation) error {
	_, err := q.db.ExecContext(ctx, createEducation,
		arg.Country,
		arg.Year,
		arg.Men,
		arg.Women,
	)
	return err
}

const createGdp = `insert into gdp (country, year, gdp) values (?, ?, ?)`

func (q *Queries) CreateGdp(ctx context.Context, arg Gdp) error {
	_, err := q.db.ExecContext(ctx, createGdp, arg.Country, arg.Year, arg.Gdp)
	return err
}

const getEducation = `select country, year, men, women from un_education order by rowid`

func (q *Queries) GetEducation(ctx context.Context) ([]UnEducation, error) {
	rows, err := q.db.QueryContext(ctx, getEducation)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []UnEducation
	for rows.Next() {
		var i UnEducation
		if err := rows.Scan(&i.Country, &i.Year, &i.Men, &i.Women); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getJoined = `select t1.country, t1.year, t1.men, t1.women, t2.gdp
from un_education t1
inner join gdp t2 on t1.country = t2.country and t1.year = t2.year
where t2.gdp is not null
order by t1.country, t1.year`

func (q *Queries) GetJoined(ctx context.Context) ([]JoinedRow, error) {
	rows, err := q.db.QueryContext(ctx, getJoined)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []JoinedRow
	for rows.Next() {
		var i JoinedRow
		if err := rows.Scan(&i.Country, &i.Year, &i.Men, &i.Women, &i.Gdp); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getEducationCountries = `select distinct country from un_education order by country`

func (q *Queries) GetEducationCountries(ctx context.Context) ([]string, error) {
	return q.queryStrings(ctx, getEducationCountries)
}

const getGdpCountries = `select distinct country from gdp order by country`

func (q *Queries) GetGdpCountries(ctx context.Context) ([]string, error) {
	return q.queryStrings(ctx, getGdpCountries)
}

func (q *Queries) queryStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
