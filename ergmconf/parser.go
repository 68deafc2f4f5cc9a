package ergmconf

import (
	"strconv"
	"strings"

	"github.com/ergmgo/ergmnet/effect"
)

// ParsedConfig is the result of parsing one configuration file: a set of
// known scalar settings plus an ordered list of unbound effect.Spec
// entries destined for effect.Bind.
type ParsedConfig struct {
	Seed           int64
	Scheme         string
	Mode           string
	Steps          int
	TargetDensity  float64
	TNTTieProb     float64
	Conditioning   bool
	InputPath      string
	OutputDir      string
	LogLevel       string
	LogFormat      string
	MetricsAddr    string
	Effects        []effect.Spec

	seen map[string]bool
}

// knownScalars is the closed set of recognised `name = value` settings;
// any other name is a config error (spec.md §4.8's "unknown option
// detection").
var knownScalars = map[string]bool{
	"seed": true, "scheme": true, "mode": true, "steps": true,
	"target_density": true, "tnt_tie_prob": true, "conditioning": true,
	"input": true, "output": true, "log_level": true, "log_format": true,
	"metrics_addr": true,
}

// Parse parses src (the full contents of a configuration file) into a
// ParsedConfig.
func Parse(src string) (*ParsedConfig, error) {
	p := &parser{lex: newLexer(src)}
	p.advance()
	cfg := &ParsedConfig{seen: make(map[string]bool), TargetDensity: 0.5, TNTTieProb: 0.5}
	for p.cur.kind != tokEOF {
		if p.cur.kind != tokIdent {
			return nil, ErrSyntax(p.cur.line, "expected option name")
		}
		name := strings.ToLower(p.cur.text)
		p.advance()
		if p.cur.kind != tokEquals {
			return nil, ErrSyntax(p.cur.line, "expected '=' after "+name)
		}
		p.advance()

		if cfg.seen[name] {
			return nil, ErrDuplicateOption(name)
		}
		cfg.seen[name] = true

		if name == "effects" {
			specs, err := p.parseEffectsBlock()
			if err != nil {
				return nil, err
			}
			cfg.Effects = specs
			continue
		}
		if !knownScalars[name] {
			return nil, ErrUnknownOption(name)
		}
		if err := p.assignScalar(cfg, name); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

type parser struct {
	lex *lexer
	cur token
}

func (p *parser) advance() { p.cur = p.lex.next() }

func (p *parser) assignScalar(cfg *ParsedConfig, name string) error {
	tok := p.cur
	p.advance()
	switch name {
	case "seed":
		n, err := strconv.ParseInt(tok.text, 10, 64)
		if err != nil {
			return ErrSyntax(tok.line, "seed must be an integer")
		}
		cfg.Seed = n
	case "steps":
		n, err := strconv.Atoi(tok.text)
		if err != nil {
			return ErrSyntax(tok.line, "steps must be an integer")
		}
		cfg.Steps = n
	case "target_density":
		f, err := parseNumber(tok.text)
		if err != nil {
			return ErrSyntax(tok.line, "target_density must be a number")
		}
		cfg.TargetDensity = f
	case "tnt_tie_prob":
		f, err := parseNumber(tok.text)
		if err != nil {
			return ErrSyntax(tok.line, "tnt_tie_prob must be a number")
		}
		cfg.TNTTieProb = f
	case "conditioning":
		b, err := strconv.ParseBool(tok.text)
		if err != nil {
			return ErrSyntax(tok.line, "conditioning must be a boolean")
		}
		cfg.Conditioning = b
	case "scheme":
		cfg.Scheme = tok.text
	case "mode":
		cfg.Mode = tok.text
	case "input":
		cfg.InputPath = tok.text
	case "output":
		cfg.OutputDir = tok.text
	case "log_level":
		cfg.LogLevel = tok.text
	case "log_format":
		cfg.LogFormat = tok.text
	case "metrics_addr":
		cfg.MetricsAddr = tok.text
	}
	return nil
}

// parseEffectsBlock parses `{ item, item, ... }` where each item is
// `Name` or `Name(key=value, key=value)`.
func (p *parser) parseEffectsBlock() ([]effect.Spec, error) {
	if p.cur.kind != tokLBrace {
		return nil, ErrSyntax(p.cur.line, "expected '{' to start effects block")
	}
	p.advance()

	var specs []effect.Spec
	for p.cur.kind != tokRBrace {
		if p.cur.kind != tokIdent {
			return nil, ErrSyntax(p.cur.line, "expected effect name")
		}
		s := effect.Spec{Name: p.cur.text, AttrIdx3: -1}
		p.advance()

		if p.cur.kind == tokLParen {
			p.advance()
			if err := p.parseEffectParams(&s); err != nil {
				return nil, err
			}
			if p.cur.kind != tokRParen {
				return nil, ErrSyntax(p.cur.line, "expected ')' to close effect params")
			}
			p.advance()
		}
		specs = append(specs, s)

		if p.cur.kind == tokComma {
			p.advance()
			continue
		}
		break
	}
	if p.cur.kind != tokRBrace {
		return nil, ErrSyntax(p.cur.line, "expected '}' to close effects block")
	}
	p.advance()
	return specs, nil
}

func (p *parser) parseEffectParams(s *effect.Spec) error {
	for p.cur.kind != tokRParen {
		if p.cur.kind != tokIdent {
			return ErrSyntax(p.cur.line, "expected parameter name")
		}
		key := strings.ToLower(p.cur.text)
		p.advance()
		if p.cur.kind != tokEquals {
			return ErrSyntax(p.cur.line, "expected '=' after "+key)
		}
		p.advance()
		val := p.cur
		p.advance()

		switch key {
		case "lambda":
			f, err := parseNumber(val.text)
			if err != nil {
				return ErrSyntax(val.line, "lambda must be a number")
			}
			s.Lambda = f
		case "exponent":
			f, err := parseNumber(val.text)
			if err != nil {
				return ErrSyntax(val.line, "exponent must be a number")
			}
			s.Exponent = f
		case "attr":
			n, err := strconv.Atoi(val.text)
			if err != nil {
				return ErrSyntax(val.line, "attr must be an integer index")
			}
			s.AttrIdx = n
		case "attr2":
			n, err := strconv.Atoi(val.text)
			if err != nil {
				return ErrSyntax(val.line, "attr2 must be an integer index")
			}
			s.AttrIdx2 = n
		case "attr3":
			n, err := strconv.Atoi(val.text)
			if err != nil {
				return ErrSyntax(val.line, "attr3 must be an integer index")
			}
			s.AttrIdx3 = n
		default:
			return ErrUnknownOption(key)
		}

		if p.cur.kind == tokComma {
			p.advance()
		}
	}
	return nil
}
