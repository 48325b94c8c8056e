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
	"flag"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
)

// parseArguments environment variables give the defaults, flags override them
func parseArguments(args []string, output io.Writer) (s settings, err error) {
	err = env.Parse(&s)
	if err != nil {
		return s, fmt.Errorf("env.Parse %v", err)
	}
	flagSet := flag.NewFlagSet("tdcli", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.StringVar(&s.RulesFilePath, "rules", s.RulesFilePath, "YAML rules file, wins over -events")
	flagSet.StringVar(&s.EventNames, "events", s.EventNames, "comma separated event names to monitor, default DeleteBucketPolicy,CreateUser,AttachRolePolicy")
	flagSet.StringVar(&s.TopicName, "topic", s.TopicName, "Pub/Sub topic receiving the alerts")
	flagSet.StringVar(&s.ProjectID, "project", s.ProjectID, "project hosting the topic")
	flagSet.IntVar(&s.Concurrency, "concurrency", s.Concurrency, "objects processed at the same time")
	flagSet.BoolVar(&s.Publish, "publish", false, "publish the alerts instead of printing them")
	flagSet.StringVar(&s.DumpRulesPath, "dump-rules", "", "write the effective rules to this YAML file")
	flagSet.BoolVar(&s.SetupMetrics, "setup-metrics", false, "create or update the log based metrics in -project")
	flagSet.BoolVar(&s.CheckMetrics, "check-metrics", false, "check the log based metrics in -project, write nothing")
	err = flagSet.Parse(args)
	if err != nil {
		return s, err
	}
	s.Arguments = flagSet.Args()

	if (s.SetupMetrics || s.CheckMetrics) && s.ProjectID == "" {
		return s, fmt.Errorf("-setup-metrics and -check-metrics need -project")
	}
	if len(s.Arguments) == 0 && s.DumpRulesPath == "" && !s.SetupMetrics && !s.CheckMetrics {
		return s, fmt.Errorf("missing log batch argument: file, folder or gs://bucket/object")
	}
	if s.Concurrency <= 0 {
		return s, fmt.Errorf("concurrency must be positive, got %d", s.Concurrency)
	}
	if s.Publish && (s.TopicName == "" || s.ProjectID == "") {
		return s, fmt.Errorf("-publish needs -topic and -project")
	}
	return s, nil
}
