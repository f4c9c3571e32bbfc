package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github_readme_generator/generator"
	"github_readme_generator/githost"
	"github_readme_generator/readme"
	"github_readme_generator/server"
	"github_readme_generator/settings"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	configPath := flag.String("config", "config.json", "path to config.json")
	serve := flag.Bool("serve", false, "start web server")
	addr := flag.String("addr", "", "http listen address when --serve (overrides config.server_addr)")
	repoURL := flag.String("repo", "", "GitHub repository URL for headless generation")
	outPath := flag.String("out", "", "output file for headless generation (default stdout)")
	noAI := flag.Bool("no-ai", false, "skip draft generation in headless mode")
	flag.Parse()

	cfg, err := settings.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *serve {
		runServe(cfg, *addr)
		return
	}

	if *repoURL == "" {
		fmt.Fprintln(os.Stderr, "either --serve or --repo is required")
		os.Exit(1)
	}
	runHeadless(cfg, *repoURL, *outPath, *noAI)
}

func runServe(cfg *settings.Store, addr string) {
	host, err := githost.New(cfg.Snapshot().GitHubToken)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	srv, err := server.New(host, cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	listen := addr
	if listen == "" {
		listen = cfg.Snapshot().ServerAddr
	}
	if listen == "" {
		listen = ":8080"
	}
	log.Printf("Starting web server on %s", listen)
	if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runHeadless fetches a repository, merges like the web flow does, and
// writes the assembled document to stdout or a file.
func runHeadless(cfg *settings.Store, repoURL, outPath string, noAI bool) {
	host, err := githost.New(cfg.Snapshot().GitHubToken)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := context.Background()
	info, err := host.FetchProject(ctx, repoURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Printf("[cli] fetched %s/%s: %d languages, %d files", info.OwnerLogin, info.Name, len(info.Languages), len(info.FetchedFiles))

	rec := readme.NewProjectRecord()
	readme.HostPatch(*info).Apply(&rec)

	snapshot := cfg.Snapshot()
	if !noAI && snapshot.APIKey != "" {
		if sections, err := draftSections(ctx, snapshot, *info); err != nil {
			log.Printf("[cli] draft generation failed, using basic prefill: %v", err)
		} else if sections != nil {
			readme.DraftPatch(*sections).Apply(&rec)
		}
	}
	readme.FallbackPatch(*info).ApplyIfEmpty(&rec)

	doc := readme.Assemble(rec)
	if outPath == "" {
		fmt.Print(doc)
		return
	}
	if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Printf("[cli] wrote %s", outPath)
}

func draftSections(ctx context.Context, cfg settings.Config, info readme.SourceRepoInfo) (*readme.DraftSections, error) {
	llm, err := generator.NewOpenAILLM(generator.LLMSettings{
		Model:   cfg.Model,
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	agent, err := generator.NewAgent(llm)
	if err != nil {
		return nil, err
	}
	return agent.GenerateSections(ctx, info)
}
