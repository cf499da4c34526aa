package cmd

import (
	"fmt"
	"log"

	otocomplete "github.com/SeaOfBirds/roma-otocomplete"
	"github.com/SeaOfBirds/roma-otocomplete/internal/config"
	"github.com/SeaOfBirds/roma-otocomplete/morphology"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

var queryFilters = []otocomplete.CharFilter{
	otocomplete.NewWidthFoldCharFilter(),
	otocomplete.NewLowercaseCharFilter(),
}

func foldQuery(q string) string {
	return otocomplete.FilterAll(q, queryFilters)
}

// newAnalyzer builds the analyzer selected by the dict setting.
func newAnalyzer() (otocomplete.Analyzer, error) {
	var m morphology.Morphology
	switch dict := viper.GetString("dict"); dict {
	case "", "none":
		return otocomplete.NewKanaAnalyzer(), nil
	case "ipa":
		k, err := morphology.NewKagomeIPA()
		if err != nil {
			return otocomplete.Analyzer{}, fmt.Errorf("loading ipa dictionary: %w", err)
		}
		m = k
	case "neologd":
		k, err := morphology.NewKagome()
		if err != nil {
			return otocomplete.Analyzer{}, fmt.Errorf("loading neologd dictionary: %w", err)
		}
		m = k
	default:
		return otocomplete.Analyzer{}, fmt.Errorf("unknown dict %q", dict)
	}
	log.Printf("reading kanji with the %s dictionary", viper.GetString("dict"))
	return otocomplete.NewMorphologicalAnalyzer(m), nil
}

// openStorage connects to the configured database and creates the table.
func openStorage() (*otocomplete.StorageRdbImpl, error) {
	var dbConfig config.DB
	if err := viper.UnmarshalKey("db", &dbConfig); err != nil {
		return nil, fmt.Errorf("parsing db config: %w", err)
	}

	var (
		db  *sqlx.DB
		err error
	)
	switch dbConfig.Driver {
	case "sqlite":
		log.Printf("opening sqlite %s", dbConfig.DSN)
		db, err = otocomplete.NewSQLiteClient(dbConfig.DSN)
	case "mysql":
		log.Printf("opening mysql %s:%s/%s", dbConfig.Addr, dbConfig.Port, dbConfig.Name)
		db, err = otocomplete.NewDBClient(dbConfig.MySQLConfig())
	default:
		return nil, fmt.Errorf("unknown db driver %q", dbConfig.Driver)
	}
	if err != nil {
		return nil, err
	}

	storage := otocomplete.NewStorageRdbImpl(db)
	if err := storage.CreateTable(); err != nil {
		db.Close()
		return nil, err
	}
	return storage, nil
}

// source is the indexed candidate set the commands search.
type source struct {
	storage  *otocomplete.StorageRdbImpl
	analyzer otocomplete.Analyzer
	indexer  *otocomplete.Indexer
}

// openSource indexes the candidates file when one is given, and the
// database otherwise.
func openSource() (*source, error) {
	analyzer, err := newAnalyzer()
	if err != nil {
		return nil, err
	}

	path := viper.GetString("candidates")
	if path == "" {
		storage, err := openStorage()
		if err != nil {
			return nil, err
		}
		indexer := otocomplete.NewIndexer(storage, analyzer, make(otocomplete.InvertedIndex))
		if err := indexer.Load(); err != nil {
			storage.DB.Close()
			return nil, err
		}
		log.Printf("indexed %d initials", len(indexer.InvertedIndex))
		return &source{storage: storage, analyzer: analyzer, indexer: indexer}, nil
	}

	candidates, err := config.LoadCandidates(path)
	if err != nil {
		return nil, err
	}
	// ファイルの候補はメモリ上のsqliteに載せる
	db, err := otocomplete.NewSQLiteClient(":memory:")
	if err != nil {
		return nil, err
	}
	storage := otocomplete.NewStorageRdbImpl(db)
	if err := storage.CreateTable(); err != nil {
		db.Close()
		return nil, err
	}
	indexer := otocomplete.NewIndexer(storage, analyzer, make(otocomplete.InvertedIndex))
	for _, c := range candidates {
		if _, err := indexer.AddCandidate(c); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: candidate %q: %w", path, c.Label, err)
		}
	}
	log.Printf("loaded %d candidates from %s", len(candidates), path)
	return &source{storage: storage, analyzer: analyzer, indexer: indexer}, nil
}

func (s *source) searcher() otocomplete.PrefixSearcher {
	return otocomplete.NewPrefixSearcher(s.storage, s.analyzer, s.indexer.InvertedIndex)
}

func (s *source) Close() error {
	return s.storage.DB.Close()
}
