// пакеты исполняемых приложений должны называться main
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/wurt83ow/docusign-skill/internal/actions"
	"github.com/wurt83ow/docusign-skill/internal/docusign"
	"github.com/wurt83ow/docusign-skill/internal/logger"
	"github.com/wurt83ow/docusign-skill/internal/store"
	"github.com/wurt83ow/docusign-skill/internal/store/memory"
	"github.com/wurt83ow/docusign-skill/internal/store/pg"
)

func gzipMiddleware(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// по умолчанию устанавливаем оригинальный http.ResponseWriter как тот,
		// который будем передавать следующей функции
		ow := w

		// проверяем, что клиент умеет получать от сервера сжатые данные в формате gzip
		acceptEncoding := r.Header.Get("Accept-Encoding")
		supportsGzip := strings.Contains(acceptEncoding, "gzip")
		if supportsGzip {
			// оборачиваем оригинальный http.ResponseWriter новым с поддержкой сжатия
			cw := newCompressWriter(w)
			// меняем оригинальный http.ResponseWriter на новый
			ow = cw
			// не забываем отправить клиенту все сжатые данные после завершения middleware
			defer cw.Close()
		}

		// проверяем, что клиент отправил серверу сжатые данные в формате gzip
		contentEncoding := r.Header.Get("Content-Encoding")
		sendsGzip := strings.Contains(contentEncoding, "gzip")
		if sendsGzip {
			// оборачиваем тело запроса в io.Reader с поддержкой декомпрессии
			cr, err := newCompressReader(r.Body)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			// меняем тело запроса на новое
			r.Body = cr
			defer cr.Close()
		}

		// передаём управление хендлеру
		h.ServeHTTP(ow, r)
	}
}

// функция main вызывается автоматически при запуске приложения
func main() {
	parseFlags()

	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	if err := logger.Initialize(flagLogLevel); err != nil {
		return err
	}
	defer logger.Log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recipients, err := newRecipientStore(ctx)
	if err != nil {
		return err
	}

	client, err := docusign.NewClient(flagDocuSignURL, docusign.Credentials{
		Username:      flagDocuSignUser,
		Password:      flagDocuSignPassword,
		IntegratorKey: flagIntegratorKey,
	}, flagDocuSignTimeout)
	if err != nil {
		return err
	}

	sender := docusign.NewAsyncSender(docusign.NewSender(client, recipients, docusign.Template{
		ID:       flagTemplateID,
		RoleName: flagTemplateRole,
	}))

	// создаём экземпляр приложения, передавая реестр действий в качестве внешней зависимости
	appInstance := newApp(actions.NewDefaultRegistry(sender))

	srv := &http.Server{
		Addr:    flagRunAddr,
		Handler: newRouter(appInstance),
	}

	errc := make(chan error, 1)
	go func() {
		logger.Log.Info("Running server", zap.String("address", flagRunAddr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	// дожидаемся конвертов, отправка которых уже началась
	sender.Wait()
	return nil
}

func newRouter(a *app) http.Handler {
	r := chi.NewRouter()

	// обернём хендлер webhook в middleware с логгированием и поддержкой gzip
	webhook := logger.RequestLogger(gzipMiddleware(a.webhook))
	r.HandleFunc("/", webhook)
	r.HandleFunc("/webhook", webhook)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	return r
}

// newRecipientStore возвращает справочник получателей: PostgreSQL, если задан DATABASE_URI,
// иначе справочник в памяти.
func newRecipientStore(ctx context.Context) (store.Store, error) {
	if flagDatabaseURI == "" {
		return memory.NewStore(store.KnownRecipients...), nil
	}

	// создаём соединение к СУБД PostgreSQL с помощью аргумента командной строки
	conn, err := sql.Open("pgx", flagDatabaseURI)
	if err != nil {
		return nil, err
	}

	s := pg.NewStore(conn)
	if err := s.Bootstrap(ctx); err != nil {
		return nil, err
	}
	if err := s.Seed(ctx, store.KnownRecipients...); err != nil {
		return nil, err
	}
	return s, nil
}
