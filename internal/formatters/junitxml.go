package formatters

import (
	"context"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/autocommit-tools/setupcheck/verification"
)

type JUnitTestSuites struct {
	XMLName xml.Name         `xml:"testsuites"`
	Suites  []JUnitTestSuite `xml:"testsuite"`
}

type JUnitTestSuite struct {
	XMLName    xml.Name        `xml:"testsuite"`
	Tests      int             `xml:"tests,attr"`
	Failures   int             `xml:"failures,attr"`
	Time       string          `xml:"time,attr"`
	Name       string          `xml:"name,attr"`
	Properties []JUnitProperty `xml:"properties>property,omitempty"`
	TestCases  []JUnitTestCase `xml:"testcase"`
}

type JUnitTestCase struct {
	XMLName     xml.Name          `xml:"testcase"`
	Classname   string            `xml:"classname,attr"`
	Name        string            `xml:"name,attr"`
	Time        string            `xml:"time,attr"`
	SkipMessage *JUnitSkipMessage `xml:"skipped,omitempty"`
	Failure     *JUnitFailure     `xml:"failure,omitempty"`
	SystemOut   string            `xml:"system-out,omitempty"`
}

type JUnitSkipMessage struct {
	Message string `xml:"message,attr"`
}

type JUnitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type JUnitFailure struct {
	Message  string `xml:"message,attr"`
	Type     string `xml:"type,attr"`
	Contents string `xml:",chardata"`
}

func junitXMLFormatter(ctx context.Context, r verification.Results) ([]byte, error) {
	classname := r.TestedScript
	if classname == "" {
		classname = r.TestedWorkflow
	}

	testsuite := JUnitTestSuite{
		Tests:      r.TotalCount(),
		Failures:   len(r.Errors) + len(r.Failed),
		Time:       "0s",
		Name:       "Setup Verification",
		Properties: []JUnitProperty{},
		TestCases:  []JUnitTestCase{},
	}

	totalDuration := time.Duration(0)
	for _, result := range r.Passed {
		testCase := JUnitTestCase{
			Classname: classname,
			Name:      result.Name(),
			Time:      result.ElapsedTime.String(),
			Failure:   nil,
		}
		testsuite.TestCases = append(testsuite.TestCases, testCase)
		totalDuration += result.ElapsedTime
	}

	for _, result := range append(r.Errors, r.Failed...) {
		message := result.Help().Message
		contents := result.Help().Suggestion
		if err := result.Error(); err != nil {
			contents = err.Error()
		}

		testCase := JUnitTestCase{
			Classname: classname,
			Name:      result.Name(),
			Time:      result.ElapsedTime.String(),
			Failure: &JUnitFailure{
				Message:  message,
				Type:     "Failure",
				Contents: contents,
			},
		}
		testsuite.TestCases = append(testsuite.TestCases, testCase)
		totalDuration += result.ElapsedTime
	}

	testsuite.Time = totalDuration.String()

	suites := JUnitTestSuites{
		Suites: []JUnitTestSuite{testsuite},
	}

	response, err := xmlMarshalIndent(suites, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("error formatting results with formatter %s: %w", "junitxml", err)
	}

	return response, nil
}
