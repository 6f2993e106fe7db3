package formatters

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/autocommit-tools/setupcheck/verification"
)

var (
	jsonMarshalIndent = json.MarshalIndent
	xmlMarshalIndent  = xml.MarshalIndent
	yamlMarshal       = yaml.Marshal
)

// genericJSONFormatter is a FormatterFunc that formats results as JSON
func genericJSONFormatter(ctx context.Context, r verification.Results) ([]byte, error) {
	response := getResponse(r)

	responseJSON, err := jsonMarshalIndent(response, "", "    ")
	if err != nil {
		e := fmt.Errorf("error formatting results with formatter %s: %w",
			"json",
			err,
		)

		return nil, e
	}

	return responseJSON, nil
}

// genericXMLFormatter is a FormatterFunc that formats results as XML
func genericXMLFormatter(ctx context.Context, r verification.Results) ([]byte, error) {
	response := getResponse(r)

	responseXML, err := xmlMarshalIndent(response, "", "    ")
	if err != nil {
		e := fmt.Errorf("error formatting results with formatter %s: %w",
			"xml",
			err,
		)

		return nil, e
	}

	return responseXML, nil
}

// genericYAMLFormatter is a FormatterFunc that formats results as YAML
func genericYAMLFormatter(ctx context.Context, r verification.Results) ([]byte, error) {
	response := getResponse(r)

	responseYAML, err := yamlMarshal(response)
	if err != nil {
		e := fmt.Errorf("error formatting results with formatter %s: %w",
			"yaml",
			err,
		)

		return nil, e
	}

	return responseYAML, nil
}
