package otocomplete

import (
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

type DBConfig struct {
	User     string
	Password string
	Addr     string
	Port     string
	DB       string
}

func NewDBConfig(user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

func (c *DBConfig) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = c.User
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.Addr, c.Port)
	cfg.DBName = c.DB
	return cfg.FormatDSN()
}

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", dbConfig.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening mysql: %w", err)
	}
	return db, nil
}

// NewSQLiteClient opens a sqlite database; ":memory:" gives a private one.
func NewSQLiteClient(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
	// :memory: はコネクションごとに別のDBになる
	db.SetMaxOpenConns(1)
	return db, nil
}

type StorageRdbImpl struct {
	DB *sqlx.DB
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB: db,
	}
}

// CreateTable creates the candidates table if it does not exist.
func (s *StorageRdbImpl) CreateTable() error {
	ddl := `create table if not exists candidates (
		id integer primary key autoincrement,
		label text not null,
		kana text not null
	)`
	if s.DB.DriverName() == "mysql" {
		ddl = `create table if not exists candidates (
			id bigint unsigned auto_increment primary key,
			label varchar(255) not null,
			kana varchar(255) not null
		)`
	}
	if _, err := s.DB.Exec(ddl); err != nil {
		return fmt.Errorf("creating candidates: %w", err)
	}
	return nil
}

func (s *StorageRdbImpl) CountCandidates() (int, error) {
	var count int
	if err := s.DB.Get(&count, `select count(*) from candidates`); err != nil {
		return -1, fmt.Errorf("counting candidates: %w", err)
	}
	return count, nil
}

func (s *StorageRdbImpl) GetAllCandidates() ([]Candidate, error) {
	candidates := []Candidate{}
	if err := s.DB.Select(&candidates, `select id, label, kana from candidates order by id`); err != nil {
		return nil, fmt.Errorf("selecting candidates: %w", err)
	}
	return candidates, nil
}

func (s *StorageRdbImpl) GetCandidates(ids []CandidateID) ([]Candidate, error) {
	if len(ids) == 0 {
		return []Candidate{}, nil
	}
	intIDs := make([]int64, len(ids))
	for i, id := range ids {
		intIDs[i] = int64(id)
	}

	query, args, err := sqlx.In(`select id, label, kana from candidates where id in (?) order by id`, intIDs)
	if err != nil {
		return nil, err
	}
	candidates := []Candidate{}
	if err := s.DB.Select(&candidates, s.DB.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("selecting candidates: %w", err)
	}
	return candidates, nil
}

func (s *StorageRdbImpl) AddCandidate(c Candidate) (CandidateID, error) {
	res, err := s.DB.NamedExec(`insert into candidates (label, kana) values (:label, :kana)`,
		map[string]interface{}{
			"label": c.Label,
			"kana":  c.Kana,
		})
	if err != nil {
		return 0, fmt.Errorf("inserting candidate: %w", err)
	}

	insertedID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return CandidateID(insertedID), nil
}
