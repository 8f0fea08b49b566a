package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/wurt83ow/docusign-skill/internal/store"
)

// Store реализует интерфейс store.Store и позволяет взаимодействовать с СУБД PostgreSQL.
type Store struct {
	// Поле conn содержит объект соединения с СУБД.
	conn *sql.DB
}

// NewStore возвращает новый экземпляр PostgreSQL хранилища
func NewStore(conn *sql.DB) *Store {
	return &Store{conn: conn}
}

// Bootstrap подготавливает БД к работе, создавая необходимые таблицы и индексы
func (s Store) Bootstrap(ctx context.Context) error {
	// запускаем транзакцию
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	// в случае неуспешного коммита все изменения транзакции будут отменены
	defer tx.Rollback()

	// создаём таблицу получателей и уникальный индекс по имени
	if _, err := tx.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS recipients (
            id serial PRIMARY KEY,
            name varchar(256) NOT NULL,
            email varchar(320) NOT NULL
        )
    `); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `CREATE UNIQUE INDEX IF NOT EXISTS recipient_name_idx ON recipients (name)`); err != nil {
		return err
	}

	// коммитим транзакцию
	return tx.Commit()
}

// Seed добавляет получателей, которых ещё нет в справочнике
func (s Store) Seed(ctx context.Context, recipients ...store.Recipient) error {
	for _, r := range recipients {
		err := s.RegisterRecipient(ctx, r)
		if err != nil && !errors.Is(err, store.ErrConflict) {
			return err
		}
	}
	return nil
}

func (s Store) FindRecipient(ctx context.Context, name string) (store.Recipient, error) {
	// запрашиваем адрес получателя по его имени
	row := s.conn.QueryRowContext(ctx, `SELECT name, email FROM recipients WHERE name = $1`, name)

	var r store.Recipient
	err := row.Scan(&r.Name, &r.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Recipient{}, store.ErrNotFound
	}
	if err != nil {
		return store.Recipient{}, err
	}
	return r, nil
}

func (s Store) RegisterRecipient(ctx context.Context, r store.Recipient) error {
	// добавляем новую запись получателя
	_, err := s.conn.ExecContext(ctx, `
        INSERT INTO recipients
        (name, email)
        VALUES
        ($1, $2);
    `, r.Name, r.Email)

	if err != nil {
		// проверяем, что ошибка сигнализирует о потенциальном нарушении целостности данных
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			err = store.ErrConflict
		}
	}

	return err
}
