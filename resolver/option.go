package resolver

import (
	"github.com/viant/contractly/converter"
	"github.com/viant/contractly/logger"
	"github.com/viant/contractly/scanner"
	"github.com/viant/tagly/format/text"
)

type Option interface{}
type Options []Option

func (o Options) Scanner() *scanner.Service {
	for _, candidate := range o {
		if value, ok := candidate.(*scanner.Service); ok {
			return value
		}
	}
	return nil
}

func (o Options) Converters() *converter.Converters {
	for _, candidate := range o {
		if value, ok := candidate.(*converter.Converters); ok {
			return value
		}
	}
	return nil
}

func (o Options) Logger() *logger.Adapter {
	for _, candidate := range o {
		if value, ok := candidate.(*logger.Adapter); ok {
			return value
		}
	}
	return nil
}

func (o Options) CaseFormat() text.CaseFormat {
	for _, candidate := range o {
		if value, ok := candidate.(text.CaseFormat); ok {
			return value
		}
	}
	return ""
}

func (o Options) Metrics() *Metrics {
	for _, candidate := range o {
		if value, ok := candidate.(*Metrics); ok {
			return value
		}
	}
	return nil
}
