package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ffauction/internal/collect"
	"ffauction/internal/config"
	"ffauction/internal/draft"
	"ffauction/internal/espn"
	"ffauction/internal/ledger"
	"ffauction/internal/salary"
	"ffauction/internal/store"
	"ffauction/internal/valuation"
)

var (
	serveAddr        string
	serveMCPPath     string
	serveSalaries    string
	serveLedger      string
	serveRequireAuth bool
	serveAuthHeader  string
	serveRefreshCron string
	serveRefreshYear int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve draft data to an AI assistant over MCP",
	Long: `serve exposes the salary sheet, live auction ledger and collection
status as MCP tools over streamable HTTP, so an assistant can advise
during the draft. Requests are authenticated with FF_MCP_API_KEY unless
--require-auth=false.`,
	RunE: runServe,
}

type PlayerLookupArgs struct {
	Name string `json:"name" jsonschema:"Player name or fragment to search for (required)"`
}

type SalaryBoardArgs struct {
	Position string `json:"position,omitempty" jsonschema:"Filter by position (QB, RB, WR, TE, K, D/ST)"`
	Tier     int    `json:"tier,omitempty" jsonschema:"Filter by tier (0 = all)"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Max rows to return (default 50)"`
}

type EmptyArgs struct{}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func runServe(cmd *cobra.Command, args []string) error {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "ffauction-mcp",
			Version: "1.0.0",
		},
		nil,
	)

	registry := make([]toolInfo, 0, 8)

	addTool(server, &registry, &mcp.Tool{
		Name:        "player_lookup",
		Description: "Find a player's salary, tier and position by name",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args PlayerLookupArgs) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(args.Name) == "" {
			return toolError(fmt.Errorf("name is required")), nil, nil
		}
		return toolJSON(lookupPlayers(args.Name))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "salary_board",
		Description: "Salary sheet sorted by price, optionally filtered by position and tier",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args SalaryBoardArgs) (*mcp.CallToolResult, any, error) {
		return toolJSON(salaryBoard(args))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "team_budgets",
		Description: "Live auction ledger: team budgets, rosters and pick history",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args EmptyArgs) (*mcp.CallToolResult, any, error) {
		l, err := ledger.ReadAuctionLedger(serveLedger)
		if err != nil {
			return toolError(fmt.Errorf("no auction ledger yet at %s: %w", serveLedger, err)), nil, nil
		}
		b, _ := json.MarshalIndent(l, "", "  ")
		return toolJSONBytes(b), nil, nil
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "collection_status",
		Description: "Most recent collection run and the CSV files on disk",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args EmptyArgs) (*mcp.CallToolResult, any, error) {
		return toolJSON(collectionStatus())
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "valuation_prompt",
		Description: "The auction valuation instructions, without data attached",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args EmptyArgs) (*mcp.CallToolResult, any, error) {
		return toolJSONBytes([]byte(valuation.PromptTemplate())), nil, nil
	})

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	apiKey := strings.TrimSpace(os.Getenv("FF_MCP_API_KEY"))
	if serveRequireAuth && apiKey == "" {
		return fmt.Errorf("FF_MCP_API_KEY is required (set env var or run with --require-auth=false)")
	}

	if serveRefreshCron != "" {
		if err := startRefreshCron(); err != nil {
			return err
		}
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", serveAuthHeader},
	}))
	r.Use(authMiddleware(apiKey))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/tools", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		w.Write(b)
	})
	r.Handle(serveMCPPath, handler)

	logger.Info("MCP HTTP server listening",
		zap.String("addr", serveAddr),
		zap.String("path", serveMCPPath),
		zap.Bool("auth", apiKey != ""))
	return http.ListenAndServe(serveAddr, r)
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

// authMiddleware checks the configured header, falling back to a bearer
// token, with a constant-time compare. An empty key disables auth.
func authMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next.ServeHTTP(w, r)
				return
			}
			key := strings.TrimSpace(r.Header.Get(serveAuthHeader))
			if key == "" {
				if authz := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
					key = strings.TrimSpace(authz[7:])
				}
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// lookupPlayers reloads the sheet per call so a rewritten salaries.csv is
// picked up without a restart.
func lookupPlayers(query string) ([]byte, error) {
	rows, err := salary.Load(serveSalaries)
	if err != nil {
		return nil, fmt.Errorf("load salary sheet: %w", err)
	}
	byName := salary.ByName(rows)

	matches := draft.Matches(query, salary.Names(rows), 5)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no player matching %q", query)
	}

	out := make([]salary.Row, 0, len(matches))
	for _, name := range matches {
		out = append(out, byName[name])
	}
	return json.MarshalIndent(map[string]any{"players": out}, "", "  ")
}

func salaryBoard(args SalaryBoardArgs) ([]byte, error) {
	rows, err := salary.Load(serveSalaries)
	if err != nil {
		return nil, fmt.Errorf("load salary sheet: %w", err)
	}

	limit := args.Limit
	if limit <= 0 {
		limit = 50
	}
	position := strings.ToUpper(strings.TrimSpace(args.Position))

	filtered := make([]salary.Row, 0, len(rows))
	for _, row := range rows {
		if position != "" && !strings.EqualFold(row.Position, position) {
			continue
		}
		if args.Tier > 0 && row.Tier != args.Tier {
			continue
		}
		filtered = append(filtered, row)
	}
	sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Salary > filtered[j].Salary })
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}

	return json.MarshalIndent(map[string]any{
		"count":   len(filtered),
		"players": filtered,
	}, "", "  ")
}

func collectionStatus() ([]byte, error) {
	st := store.New(dataDir)

	out := map[string]any{"data_dir": dataDir}

	if raw, err := st.ReadRaw("manifest.json"); err == nil {
		var m collect.Manifest
		if err := json.Unmarshal(raw, &m); err == nil {
			out["last_run"] = m
		}
	}

	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("no collected data at %s: %w", dataDir, err)
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".csv") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	out["csv_files"] = files

	return json.MarshalIndent(out, "", "  ")
}

// startRefreshCron re-collects projections on a schedule so the assistant
// sees fresh numbers during draft week.
func startRefreshCron() error {
	if serveRefreshYear == 0 {
		return fmt.Errorf("--refresh-year is required with --refresh-cron")
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("projection refresh needs ESPN credentials: %w", err)
	}

	c := cron.New()
	_, err = c.AddFunc(serveRefreshCron, func() {
		st := store.New(dataDir)
		client := espn.NewClient(st, cfg)
		rows, err := collect.Projections(client, st, serveRefreshYear, true)
		if err != nil {
			logger.Error("scheduled projection refresh failed",
				zap.Int("year", serveRefreshYear), zap.Error(err))
			return
		}
		logger.Info("scheduled projection refresh complete",
			zap.Int("year", serveRefreshYear), zap.Int("rows", rows))
	})
	if err != nil {
		return fmt.Errorf("invalid --refresh-cron schedule %q: %w", serveRefreshCron, err)
	}
	c.Start()

	logger.Info("projection refresh scheduled",
		zap.String("cron", serveRefreshCron), zap.Int("year", serveRefreshYear))
	return nil
}

func toolJSON(res []byte, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSONBytes(res), nil, nil
}

func toolJSONBytes(res []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(res)},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "HTTP listen address")
	serveCmd.Flags().StringVar(&serveMCPPath, "path", "/mcp", "HTTP path for the MCP endpoint")
	serveCmd.Flags().StringVar(&serveSalaries, "salaries", "salaries.csv", "salary sheet to serve")
	serveCmd.Flags().StringVar(&serveLedger, "ledger", "data/auction.json", "auction ledger to serve")
	serveCmd.Flags().BoolVar(&serveRequireAuth, "require-auth", true, "require API key auth via FF_MCP_API_KEY")
	serveCmd.Flags().StringVar(&serveAuthHeader, "auth-header", "X-API-Key", "HTTP header to read the API key from")
	serveCmd.Flags().StringVar(&serveRefreshCron, "refresh-cron", "", "cron schedule for re-collecting projections (e.g. '0 6 * * *')")
	serveCmd.Flags().IntVar(&serveRefreshYear, "refresh-year", 0, "season to refresh projections for")
	rootCmd.AddCommand(serveCmd)
}
