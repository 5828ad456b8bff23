package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"quarkstart/internal/platform"
	"quarkstart/internal/scaffold"
	"quarkstart/pkg/logging"

	"github.com/briandowns/spinner"
	"github.com/chzyer/readline"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	defaultGroupID    = "org.acme"
	defaultArtifactID = "code-with-quarkus"
	defaultVersion    = "1.0.0-SNAPSHOT"
	defaultBuildTool  = "MAVEN"
)

var (
	createGroupID    string
	createArtifactID string
	createVersion    string
	createBuildTool  string
	createStream     string
	createExtensions []string
	createNoExamples bool
	createNoCode     bool
	createOutputDir  string
	createDefaults   bool
)

// newCreateCmd creates the Cobra command that scaffolds a new project by
// downloading a generated skeleton from the service.
func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project from the code generation service",
		Long: `Downloads a generated project skeleton and unpacks it into a new
directory. Values not given as flags are asked for interactively; --defaults
accepts the defaults for everything and asks nothing.

The optional "no examples" and "no starter code" requests are only sent when
the service advertises support for them, so older service instances keep
working.`,
		RunE: runCreate,
	}
	cmd.Flags().StringVarP(&createGroupID, "group-id", "g", "", "Project group id (default: "+defaultGroupID+")")
	cmd.Flags().StringVarP(&createArtifactID, "artifact-id", "a", "", "Project artifact id (default: "+defaultArtifactID+")")
	cmd.Flags().StringVar(&createVersion, "project-version", "", "Project version (default: "+defaultVersion+")")
	cmd.Flags().StringVarP(&createBuildTool, "build-tool", "b", defaultBuildTool, "Build tool (MAVEN or GRADLE)")
	cmd.Flags().StringVarP(&createStream, "stream", "s", "", "Platform stream key (default: the service's recommended stream)")
	cmd.Flags().StringArrayVarP(&createExtensions, "extension", "e", nil, "Extension id to include; repeatable")
	cmd.Flags().BoolVar(&createNoExamples, "no-examples", false, "Request a skeleton without example code (legacy services ignore this)")
	cmd.Flags().BoolVar(&createNoCode, "no-code", false, "Request a skeleton without starter code")
	cmd.Flags().StringVarP(&createOutputDir, "output-dir", "d", "", "Directory to unpack into (default: the artifact id)")
	cmd.Flags().BoolVarP(&createDefaults, "defaults", "y", false, "Accept defaults for all unset values, never prompt")
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	client, err := newPlatformClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	// Capability and stream discovery are independent queries against
	// disjoint endpoints; run them concurrently.
	var (
		caps    platform.Capabilities
		streams []platform.Stream
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		discovered, err := client.Capabilities(gctx)
		if err != nil {
			// Older service instances have no discovery endpoint at
			// all; fall back to the defaults instead of failing.
			logging.Warn("Create", "Capability discovery failed (%v), assuming defaults", err)
			caps = platform.DefaultCapabilities()
			return nil
		}
		caps = discovered
		return nil
	})
	g.Go(func() error {
		var err error
		streams, err = client.Streams(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	spec := platform.ProjectSpec{
		GroupID:    createGroupID,
		ArtifactID: createArtifactID,
		Version:    createVersion,
		BuildTool:  strings.ToUpper(createBuildTool),
		StreamKey:  createStream,
		Extensions: createExtensions,
		NoExamples: createNoExamples,
		NoCode:     createNoCode,
	}
	if err := fillProjectSpec(&spec, streams, out); err != nil {
		return err
	}

	targetDir := createOutputDir
	if targetDir == "" {
		targetDir = spec.ArtifactID
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Downloading project skeleton..."
	s.Writer = cmd.ErrOrStderr()
	s.Start()
	payload, err := client.Download(ctx, spec, caps)
	s.Stop()
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	if err := scaffold.Unpack(payload, targetDir); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s\n", text.FgGreen.Sprint("Project created in"), targetDir)
	fmt.Fprintf(out, "  cd %s\n", targetDir)
	return nil
}

// fillProjectSpec completes spec with prompted or default values. With
// --defaults every unset value takes its default and nothing is asked.
func fillProjectSpec(spec *platform.ProjectSpec, streams []platform.Stream, out io.Writer) error {
	if spec.StreamKey == "" {
		if recommended := platform.RecommendedStream(streams); recommended != nil {
			spec.StreamKey = recommended.Key
		}
	}

	if createDefaults {
		applySpecDefaults(spec)
		return nil
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     filepath.Join(os.TempDir(), ".quarkstart_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		// No usable terminal (piped input, CI). Take the defaults.
		logging.Debug("Create", "No interactive terminal (%v), using defaults", err)
		applySpecDefaults(spec)
		return nil
	}
	defer rl.Close()

	if spec.GroupID == "" {
		if spec.GroupID, err = promptString(rl, "Group id", defaultGroupID); err != nil {
			return err
		}
	}
	if spec.ArtifactID == "" {
		if spec.ArtifactID, err = promptString(rl, "Artifact id", defaultArtifactID); err != nil {
			return err
		}
	}
	if spec.Version == "" {
		if spec.Version, err = promptString(rl, "Version", defaultVersion); err != nil {
			return err
		}
	}

	if len(streams) > 1 {
		picked, err := promptStream(rl, out, streams, spec.StreamKey)
		if err != nil {
			return err
		}
		spec.StreamKey = picked
	}
	return nil
}

func applySpecDefaults(spec *platform.ProjectSpec) {
	if spec.GroupID == "" {
		spec.GroupID = defaultGroupID
	}
	if spec.ArtifactID == "" {
		spec.ArtifactID = defaultArtifactID
	}
	if spec.Version == "" {
		spec.Version = defaultVersion
	}
}

// promptString asks for one value, returning def on empty input.
func promptString(rl *readline.Instance, label, def string) (string, error) {
	rl.SetPrompt(fmt.Sprintf("%s [%s]: ", label, def))
	line, err := rl.Readline()
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

// promptStream shows the numbered stream list and asks for a pick. Empty
// input keeps the preselected key.
func promptStream(rl *readline.Instance, out io.Writer, streams []platform.Stream, preselected string) (string, error) {
	defaultIndex := 1
	for i, s := range streams {
		marker := " "
		if s.Key == preselected {
			marker = "*"
			defaultIndex = i + 1
		}
		fmt.Fprintf(out, " %s %d) %s\n", marker, i+1, s.Label)
	}

	rl.SetPrompt(fmt.Sprintf("Stream [%d]: ", defaultIndex))
	line, err := rl.Readline()
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return streams[defaultIndex-1].Key, nil
	}
	if n, err := strconv.Atoi(line); err == nil {
		if n < 1 || n > len(streams) {
			return "", fmt.Errorf("stream %d is out of range", n)
		}
		return streams[n-1].Key, nil
	}
	// Not a number: accept a stream key typed verbatim.
	for _, s := range streams {
		if s.Key == line {
			return s.Key, nil
		}
	}
	return "", fmt.Errorf("unknown stream %q", line)
}
