// Command evalexpr is a small CLI front end over the evalexpr library:
// it compiles and evaluates one expression per invocation against an
// optional set of bound variables.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/myfstd/evalexpr"
	"github.com/myfstd/evalexpr/environment"
)

var (
	verbose  bool
	varsFlag []string
	varsFile string
	log      = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:     "evalexpr <expression>",
	Short:   "Evaluate an arithmetic/boolean expression",
	Args:    cobra.ExactArgs(1),
	Version: "0.1.0",
	RunE:    runEval,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug progress messages while building and evaluating")
	rootCmd.Flags().StringArrayVar(&varsFlag, "vars", nil, "bind a variable as name=value (repeatable)")
	rootCmd.Flags().StringVar(&varsFile, "vars-file", "", "load variable bindings from a YAML file ({name: value, ...})")
}

func main() {
	log.SetOutput(os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func runEval(_ *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	expression := args[0]
	env := environment.NewMapEnvironment()

	if varsFile != "" {
		if err := loadVarsFile(env, varsFile); err != nil {
			return err
		}
	}
	if err := applyVarsFlag(env, varsFlag); err != nil {
		return err
	}

	if verbose {
		log.WithField("expression", expression).Debug("building tree")
	}

	node, err := evalexpr.BuildTree(expression)
	if err != nil {
		return err
	}

	if verbose {
		log.Debug("tree built, evaluating")
	}

	result, err := node.Evaluate(env)
	if err != nil {
		return err
	}

	fmt.Println(result.String())
	return nil
}

// applyVarsFlag binds every "name=value" pair from --vars as a Float,
// Int or Bool variable, inferred from the literal's shape; anything else
// is bound as a String.
func applyVarsFlag(env *environment.MapEnvironment, pairs []string) error {
	for _, pair := range pairs {
		name, text, found := strings.Cut(pair, "=")
		if !found {
			return errors.Errorf("invalid --vars entry %q, expected name=value", pair)
		}
		env.SetValue(name, inferLiteral(text))
	}
	return nil
}

// loadVarsFile decodes a flat YAML mapping of variable names to scalar
// values and binds each one into env.
func loadVarsFile(env *environment.MapEnvironment, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading vars file %q", path)
	}

	var bindings map[string]interface{}
	if err := yaml.Unmarshal(raw, &bindings); err != nil {
		return errors.Wrapf(err, "parsing vars file %q", path)
	}

	for name, rawValue := range bindings {
		v, err := fromYAML(rawValue)
		if err != nil {
			return errors.Wrapf(err, "binding %q from %q", name, path)
		}
		env.SetValue(name, v)
	}
	return nil
}
