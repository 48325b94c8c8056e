// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tdcli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"

	pubsub "cloud.google.com/go/pubsub/apiv1"
	"cloud.google.com/go/storage"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"

	"github.com/talmoqbil/aws-threat-detection/utilities/alr"
	"github.com/talmoqbil/aws-threat-detection/utilities/bat"
	"github.com/talmoqbil/aws-threat-detection/utilities/det"
	"github.com/talmoqbil/aws-threat-detection/utilities/ffo"
	"github.com/talmoqbil/aws-threat-detection/utilities/gcs"
	"github.com/talmoqbil/aws-threat-detection/utilities/gps"
	"github.com/talmoqbil/aws-threat-detection/utilities/str"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Run threat detection cli, returns the process exit code
func Run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)
	s, err := parseArguments(args, stderr)
	if err != nil {
		if err != flag.ErrHelp {
			logger.Println(err)
		}
		return ExitUsage
	}

	if s.SetupMetrics || s.CheckMetrics {
		err = deployLogMetrics(ctx, s.ProjectID, s.CheckMetrics)
		if err != nil {
			logger.Println(err)
			return ExitError
		}
		if len(s.Arguments) == 0 {
			return ExitOK
		}
	}

	var eventNames []string
	if s.EventNames != "" {
		eventNames = str.SplitTrim(s.EventNames, ",")
	}
	rules, source, err := det.LoadRules(s.RulesFilePath, eventNames)
	if err != nil {
		logger.Println(err)
		return ExitUsage
	}
	ruleSet, err := det.NewRuleSet(rules)
	if err != nil {
		logger.Println(err)
		return ExitUsage
	}
	logger.Printf("%d rules from %s", ruleSet.Len(), source)
	if s.DumpRulesPath != "" {
		err = ffo.MarshalYAMLWrite(s.DumpRulesPath, det.Rules{Rules: rules})
		if err != nil {
			logger.Println(err)
			return ExitError
		}
		logger.Printf("rules written to %s", s.DumpRulesPath)
		if len(s.Arguments) == 0 {
			return ExitOK
		}
	}

	refs, err := objectReferences(s.Arguments)
	if err != nil {
		logger.Println(err)
		return ExitUsage
	}

	fetcher := routingFetcher{}
	var publisher alr.Publisher = &printPublisher{output: stdout}
	channel := s.TopicName
	if needsGCS(refs) || s.Publish {
		creds, err := google.FindDefaultCredentials(ctx, "https://www.googleapis.com/auth/cloud-platform")
		if err != nil {
			logger.Printf("google.FindDefaultCredentials %v", err)
			return ExitError
		}
		if needsGCS(refs) {
			storageClient, err := storage.NewClient(ctx, option.WithCredentials(creds))
			if err != nil {
				logger.Printf("storage.NewClient %v", err)
				return ExitError
			}
			defer storageClient.Close()
			fetcher.gcs = gcs.NewFetcher(storageClient)
		}
		if s.Publish {
			pubsubPublisherClient, err := pubsub.NewPublisherClient(ctx, option.WithCredentials(creds))
			if err != nil {
				logger.Printf("pubsub.NewPublisherClient %v", err)
				return ExitError
			}
			defer pubsubPublisherClient.Close()
			publisher = gps.NewPublisher(pubsubPublisherClient, s.ProjectID)
		}
	}
	if channel == "" {
		channel = "stdout"
	}

	orchestrator := &bat.Orchestrator{
		Fetcher:        fetcher,
		RuleSet:        ruleSet,
		Dispatcher:     &alr.Dispatcher{Publisher: publisher, Channel: channel},
		MaxConcurrency: s.Concurrency,
	}
	outcome := orchestrator.Process(ctx, refs)
	for _, objectError := range outcome.Errors {
		logger.Println(objectError.Error())
	}
	logger.Printf("%d objects %d events %d matches %d delivered", outcome.ObjectCount, outcome.EventCount, outcome.MatchCount, outcome.DeliveredCount)

	result := outcome.Result()
	resultJSON, err := json.Marshal(result)
	if err != nil {
		logger.Printf("json.Marshal %v", err)
		return ExitError
	}
	fmt.Fprintln(stdout, string(resultJSON))
	if result.Status == bat.ResultSuccess || result.Status == bat.ResultNoRecords {
		return ExitOK
	}
	return ExitError
}
