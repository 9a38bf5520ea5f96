package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alfredhq/alfred/internal/infrastructure/llm"
)

// Fixed replies. The user never learns which kind of failure happened;
// the kind only goes to the server log.
const (
	ConfigErrorReply = "Perdão, senhor. Meu acesso à central de inteligência ainda não foi configurado. Peça ao administrador para cadastrar a chave da API."
	FallbackReply    = "Perdão, senhor. Não consegui processar o seu pedido agora. Poderia tentar novamente?"
)

// Error kinds used in logs.
const (
	kindConfig    = "config"
	kindTransport = "transport"
	kindParse     = "parse"
	kindPrompt    = "prompt"
	kindPanic     = "panic"
)

// Assistant runs one chat turn: prompt, one model call, parse.
type Assistant struct {
	provider llm.Provider
	prompts  *PromptBuilder
	now      func() time.Time
}

type Option func(*Assistant)

// WithClock replaces time.Now, which anchors relative dates in the prompt.
func WithClock(now func() time.Time) Option {
	return func(a *Assistant) { a.now = now }
}

func New(provider llm.Provider, prompts *PromptBuilder, opts ...Option) *Assistant {
	if prompts == nil {
		prompts = NewPromptBuilder(nil)
	}
	a := &Assistant{provider: provider, prompts: prompts, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SendMessage always resolves to a ChatReply. Missing configuration,
// provider failures and malformed output collapse into fixed replies with
// a NONE action.
func (a *Assistant) SendMessage(ctx context.Context, text string, snap Snapshot) (reply ChatReply) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("assistant turn panicked", "kind", kindPanic, "panic", fmt.Sprint(r))
			reply = fixedReply(FallbackReply)
		}
	}()

	if a.provider == nil {
		slog.Warn("assistant has no model provider", "kind", kindConfig)
		return fixedReply(ConfigErrorReply)
	}

	system, err := a.prompts.SystemInstruction(a.now())
	if err != nil {
		slog.Error("build system instruction", "kind", kindPrompt, "err", err)
		return fixedReply(FallbackReply)
	}
	prompt, err := a.prompts.ContextPrompt(text, snap)
	if err != nil {
		slog.Error("build context prompt", "kind", kindPrompt, "err", err)
		return fixedReply(FallbackReply)
	}

	start := time.Now()
	raw, err := a.provider.Generate(ctx, system, prompt)
	if err != nil {
		if errors.Is(err, llm.ErrMissingAPIKey) {
			slog.Warn("model API key missing", "kind", kindConfig)
			return fixedReply(ConfigErrorReply)
		}
		slog.Error("model call failed", "kind", kindTransport, "err", err, "elapsed", time.Since(start))
		return fixedReply(FallbackReply)
	}

	parsed, err := ParseReply(raw)
	if err != nil {
		slog.Error("model reply rejected", "kind", kindParse, "err", err, "raw_text", raw)
		return fixedReply(FallbackReply)
	}
	if parsed.Action.unknownType != "" {
		slog.Warn("model proposed unknown action", "type", parsed.Action.unknownType)
	}

	slog.Info("assistant turn completed", "action", parsed.Action.Type, "elapsed", time.Since(start))
	return parsed
}

func fixedReply(text string) ChatReply {
	return ChatReply{Reply: text, Action: &Action{Type: ActionNone}}
}
