package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/launch-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/launch-metrics-api/internal/config"
	"github.com/vfg2006/launch-metrics-api/internal/domain"
	"github.com/vfg2006/launch-metrics-api/internal/usecases/authenticating"
	"github.com/vfg2006/launch-metrics-api/pkg/log"
	"github.com/vfg2006/launch-metrics-api/pkg/utils"
)

const trackedPagesTable = "config_tracked_pages"

// Páginas padrão do funil de lançamento
var defaultTrackedPages = []domain.TrackedPage{
	{Slug: "vsl", Label: "VSL", URL: "https://exemplo.com.br/vsl", PagePath: "/vsl", SortOrder: 1, IsActive: true},
	{Slug: "signup", Label: "Inscrição", URL: "https://exemplo.com.br/inscricao", PagePath: "/inscricao", SortOrder: 2, IsActive: true},
	{Slug: "confirmation", Label: "Confirmação", URL: "https://exemplo.com.br/confirmacao", PagePath: "/confirmacao", SortOrder: 3, IsActive: true},
	{Slug: "aula1", Label: "Aula 1", URL: "https://exemplo.com.br/aula-1", PagePath: "/aula-1", SortOrder: 4, IsActive: true},
	{Slug: "aula2", Label: "Aula 2", URL: "https://exemplo.com.br/aula-2", PagePath: "/aula-2", SortOrder: 5, IsActive: true},
	{Slug: "aula3", Label: "Aula 3", URL: "https://exemplo.com.br/aula-3", PagePath: "/aula-3", SortOrder: 6, IsActive: true},
}

func main() {
	seed := flag.Bool("seed", true, "insere as páginas padrão do funil que ainda não existem")
	tokenSubject := flag.String("admin-token", "", "gera um token de administrador para o subject informado e sai")
	tokenTTL := flag.Duration("token-ttl", authenticating.DefaultTokenTTL, "validade do token gerado")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	if *tokenSubject != "" {
		if err := printAdminToken(cfg, *tokenSubject, *tokenTTL); err != nil {
			logrus.WithError(err).Fatal("Erro ao gerar token de administrador")
		}
		return
	}

	logrus.Info("Iniciando script de migração...")
	startTime := time.Now()

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := postgres.EnsureSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar schema")
	}
	logrus.Info("Schema aplicado com sucesso")

	if *seed {
		err := conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
			inserted, err := seedTrackedPages(ctx, q, defaultTrackedPages)
			if err != nil {
				return err
			}
			logrus.Infof("Páginas monitoradas: %d inseridas, %d já existentes", inserted, len(defaultTrackedPages)-inserted)
			return nil
		})
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao inserir páginas monitoradas")
		}
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}

// seedTrackedPages insere as páginas cujo slug ainda não existe e devolve quantas foram criadas
func seedTrackedPages(ctx context.Context, q postgres.Queryer, pages []domain.TrackedPage) (int, error) {
	inserted := 0

	for _, page := range pages {
		id, err := utils.GenerateID()
		if err != nil {
			return inserted, fmt.Errorf("erro ao gerar id da página %s: %w", page.Slug, err)
		}

		query, args, err := sq.Insert(trackedPagesTable).
			Columns("id", "slug", "label", "url", "page_path", "sort_order", "is_active").
			Values(id, page.Slug, page.Label, page.URL, page.PagePath, page.SortOrder, page.IsActive).
			Suffix("ON CONFLICT (slug) DO NOTHING").
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			return inserted, err
		}

		result, err := q.ExecContext(ctx, query, args...)
		if err != nil {
			return inserted, fmt.Errorf("erro ao inserir página %s: %w", page.Slug, err)
		}

		if rows, err := result.RowsAffected(); err == nil && rows > 0 {
			inserted++
		}
	}

	return inserted, nil
}

func printAdminToken(cfg *config.Config, subject string, ttl time.Duration) error {
	authenticator := authenticating.NewService(cfg.Auth)
	if authenticator == nil {
		return authenticating.ErrAuthDisabled
	}

	token, err := authenticator.GenerateToken(subject, domain.RoleAdmin, ttl)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(os.Stdout, token)
	return err
}
