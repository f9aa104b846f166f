// Command postgen generates social media posts from the terminal. It
// drives the same form state and action boundary as the web front-end.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/socialposts/internal/app"
	"github.com/kahvecikaan/socialposts/internal/config"
	"github.com/kahvecikaan/socialposts/internal/domain"
	"github.com/kahvecikaan/socialposts/internal/ui"
	"github.com/spf13/cobra"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
)

type flags struct {
	name            string
	description     string
	price           string
	category        string
	tone            string
	platforms       []string
	language        string
	includeResearch bool
	describe        bool
	configFile      string
	logLevel        string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "postgen",
		Short: "Generate social media posts for a product",
		Long: `Generate platform-specific social media posts for a product.

The OpenAI API key is read from OPENAI_API_KEY. Use --describe to let the
model write the product description from the name first.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), f, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&f.name, "name", "n", "", "product name")
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "product description")
	cmd.Flags().StringVarP(&f.price, "price", "p", "", "product price, e.g. 49.99")
	cmd.Flags().StringVar(&f.category, "category", "", "product category")
	cmd.Flags().StringVarP(&f.tone, "tone", "t", string(domain.ToneProfessional), "tone: professional, casual, humorous, urgent, inspirational")
	cmd.Flags().StringSliceVar(&f.platforms, "platform", nil, "platforms to write for (default all)")
	cmd.Flags().StringVarP(&f.language, "language", "l", string(domain.DefaultLanguage), "output language code")
	cmd.Flags().BoolVarP(&f.includeResearch, "research", "r", false, "include web research for trends and seasonal context")
	cmd.Flags().BoolVar(&f.describe, "describe", false, "generate the description from the product name")
	cmd.Flags().StringVar(&f.configFile, "config", "", "YAML configuration file")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "warn", "log level")

	return cmd
}

func run(ctx context.Context, f *flags, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "postgen",
		Level:  hclog.LevelFromString(f.logLevel),
		Output: os.Stderr,
	})

	cfg, err := config.Load(f.configFile)
	if err != nil {
		return err
	}

	a := app.New(app.Options{
		Config:  cfg,
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
		Logger:  logger,
	})

	state := formState(f)

	if f.describe {
		state = ui.Reduce(state, ui.DescriptionRequested{})
		if state.GeneratingDescription {
			resp := a.Actions.GenerateDescription(ctx, state.Product.Name, state.Product.Language)
			if resp.Success {
				state = ui.Reduce(state, ui.DescriptionSucceeded{Description: resp.Description})
				fmt.Fprintf(out, "Description: %s\n\n", resp.Description)
			} else {
				state = ui.Reduce(state, ui.DescriptionFailed{})
				logger.Warn("Unable to generate description", "error", resp.Error)
			}
		}
	}

	state = ui.Reduce(state, ui.GenerateRequested{})
	if !state.Loading {
		printFieldErrors(out, state.Errors())
		return fmt.Errorf("invalid product")
	}

	body, err := generateRequest(state.Product)
	if err != nil {
		state = ui.Reduce(state, ui.GenerateErrored{})
		fmt.Fprintln(out, state.Error)
		return err
	}

	resp := a.Actions.GeneratePosts(ctx, body)
	if resp.Success {
		state = ui.Reduce(state, ui.GenerateSucceeded{Posts: resp.Posts})
	} else {
		state = ui.Reduce(state, ui.GenerateFailed{Code: resp.Code, Message: resp.Error})
	}

	if state.Error != "" {
		fmt.Fprintln(out, state.Error)
		return fmt.Errorf("generation failed")
	}

	printPosts(out, cfg, state.Posts)
	return nil
}

// formState replays the flags through the reducer so the terminal sees the
// same field rules as the form
func formState(f *flags) ui.State {
	state := ui.Initial()
	state = ui.Reduce(state, ui.SetField{Field: ui.FieldName, Value: f.name})
	state = ui.Reduce(state, ui.SetField{Field: ui.FieldDescription, Value: f.description})
	state = ui.Reduce(state, ui.SetField{Field: ui.FieldCategory, Value: f.category})
	state = ui.Reduce(state, ui.SetField{Field: ui.FieldTone, Value: f.tone})
	state = ui.Reduce(state, ui.SetField{Field: ui.FieldLanguage, Value: f.language})
	state = ui.Reduce(state, ui.PriceChanged{Value: strings.TrimPrefix(f.price, "$")})
	state = ui.Reduce(state, ui.SetIncludeResearch{Value: f.includeResearch})

	if len(f.platforms) > 0 {
		platforms := make([]domain.Platform, 0, len(f.platforms))
		for _, p := range f.platforms {
			platforms = append(platforms, domain.Platform(strings.ToLower(strings.TrimSpace(p))))
		}
		state = ui.Reduce(state, ui.SetPlatforms{Platforms: platforms})
	}
	return state
}

// generateRequest encodes product the way the web form submits it
func generateRequest(product domain.Product) (json.RawMessage, error) {
	price := product.Price
	platforms := product.Platforms
	if platforms == nil {
		platforms = []domain.Platform{}
	}
	return json.Marshal(domain.GenerateRequest{Product: &domain.ProductInput{
		Name:            product.Name,
		Description:     product.Description,
		Price:           &price,
		Category:        product.Category,
		Tone:            product.Tone,
		Platforms:       platforms,
		IncludeResearch: product.IncludeResearch,
		Language:        product.Language,
	}})
}

func printFieldErrors(out io.Writer, errs domain.FieldErrors) {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(out, "%s: %s\n", field, errs[field])
	}
}

func printPosts(out io.Writer, cfg *config.Config, posts []domain.SocialMediaPost) {
	if len(posts) == 0 {
		fmt.Fprintln(out, "No posts were generated.")
		return
	}
	for i, post := range posts {
		profile := cfg.Profile(post.Platform)
		length := len([]rune(post.Content))
		fmt.Fprintf(out, "[%d] %s (%d/%d)\n%s\n\n", i+1, profile.Name, length, profile.MaxLength, post.Content)
	}
}
