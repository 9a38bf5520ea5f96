package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/alfredhq/alfred/internal/api"
	"github.com/alfredhq/alfred/internal/api/controller"
	"github.com/alfredhq/alfred/internal/assistant"
	"github.com/alfredhq/alfred/internal/config"
	"github.com/alfredhq/alfred/internal/infrastructure/database"
	"github.com/alfredhq/alfred/internal/infrastructure/embedding"
	"github.com/alfredhq/alfred/internal/infrastructure/llm"
	"github.com/alfredhq/alfred/internal/infrastructure/vectordb"
	"github.com/alfredhq/alfred/internal/model"
	"github.com/alfredhq/alfred/internal/repository"
	"github.com/alfredhq/alfred/internal/service"
)

// app holds the wired dependency graph shared by the subcommands.
type app struct {
	db     *gorm.DB
	vector *vectordb.QdrantClient
	memory *service.MemoryService

	transactions *service.TransactionService
	tasks        *service.TaskService
	lists        *service.ListService
	projects     *service.ProjectService
	chat         *service.ChatService
	recurrence   *service.RecurrenceService
	auth         *service.AuthService
}

func newApp(ctx context.Context, conf *config.Config) (*app, error) {
	db, err := database.NewConnection(conf.Database, conf.Log.Level)
	if err != nil {
		return nil, err
	}
	a := &app{db: db}

	if conf.Qdrant.Enabled {
		if err := a.initMemory(ctx, conf); err != nil {
			// hints are optional; the assistant works without them
			slog.Warn("vector memory disabled", "err", err)
		}
	}

	provider, err := llm.NewProvider(conf.Model)
	if err != nil {
		return nil, err
	}

	txRepo := repository.NewTransactionRepo(db)
	taskRepo := repository.NewTaskRepo(db)

	a.transactions = service.NewTransactionService(txRepo, a.memory)
	a.tasks = service.NewTaskService(taskRepo)
	a.lists = service.NewListService(repository.NewListRepo(db))
	a.projects = service.NewProjectService(repository.NewProjectRepo(db))
	a.recurrence = service.NewRecurrenceService(txRepo, taskRepo)
	a.auth = service.NewAuthService(repository.NewUserRepository(db), conf.JWT.Secret, conf.JWT.ExpireHours)

	dispatcher := assistant.NewDispatcher(assistant.Handlers{
		Transactions: a.transactions,
		Tasks:        a.tasks,
		Lists:        a.lists,
		Projects:     a.projects,
	}, nil)
	alfred := assistant.New(provider, assistant.NewPromptBuilder(model.PredefinedCategories))
	a.chat = service.NewChatService(alfred, dispatcher, a.tasks, a.lists, repository.NewChatRepo(db), a.memory)

	return a, nil
}

func (a *app) initMemory(ctx context.Context, conf *config.Config) error {
	client, err := vectordb.NewQdrantClient(conf.Qdrant.Host, conf.Qdrant.Port)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.InitCollection(ctx, conf.Qdrant.CollectionName, conf.Qdrant.VectorSize); err != nil {
		client.Close()
		return fmt.Errorf("init qdrant collection: %w", err)
	}

	embedCfg := conf.Embedding
	if embedCfg.APIKey == "" && conf.Model.Provider == "openai" {
		embedCfg.APIKey = conf.Model.APIKey
	}
	a.vector = client
	a.memory = service.NewMemoryService(
		embedding.NewOpenAIClient(embedCfg.APIKey, embedCfg.BaseURL, embedCfg.Model),
		vectordb.NewQdrantRepository(client, conf.Qdrant.CollectionName),
	)
	return nil
}

func (a *app) controllers() api.Controllers {
	return api.Controllers{
		Auth:         controller.NewAuthController(a.auth),
		Chat:         controller.NewChatController(a.chat),
		Transactions: controller.NewTransactionController(a.transactions),
		Tasks:        controller.NewTaskController(a.tasks),
		Lists:        controller.NewListController(a.lists),
		Projects:     controller.NewProjectController(a.projects),
	}
}

func (a *app) Close() {
	a.memory.Wait()
	if a.vector != nil {
		a.vector.Close()
	}
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
