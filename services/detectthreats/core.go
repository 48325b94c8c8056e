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

package detectthreats

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/functions/metadata"
	pubsub "cloud.google.com/go/pubsub/apiv1"
	"cloud.google.com/go/storage"
	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"

	"github.com/talmoqbil/aws-threat-detection/utilities/alr"
	"github.com/talmoqbil/aws-threat-detection/utilities/bat"
	"github.com/talmoqbil/aws-threat-detection/utilities/ctl"
	"github.com/talmoqbil/aws-threat-detection/utilities/ffo"
	"github.com/talmoqbil/aws-threat-detection/utilities/gcf"
	"github.com/talmoqbil/aws-threat-detection/utilities/gcs"
	"github.com/talmoqbil/aws-threat-detection/utilities/gfs"
	"github.com/talmoqbil/aws-threat-detection/utilities/glo"
	"github.com/talmoqbil/aws-threat-detection/utilities/gps"
	"github.com/talmoqbil/aws-threat-detection/utilities/solution"
)

// Global structure for global variables to optimize the cloud function performances
type Global struct {
	environment         string
	initID              string
	instanceName        string
	microserviceName    string
	objectNameRegex     *regexp.Regexp
	orchestrator        *bat.Orchestrator
	projectID           string
	retryTimeOutSeconds int64
}

// Initialize is to be executed in the init() function of the cloud function to optimize the cold start
func Initialize(ctx context.Context, global *Global) (err error) {
	log.SetFlags(0)
	global.initID = fmt.Sprintf("%v", uuid.New())

	var instanceDeployment InstanceDeployment
	var environment Environment

	err = ffo.ReadUnmarshalYAML(solution.PathToFunctionCode+solution.SettingsFileName, &instanceDeployment)
	if err != nil {
		global.logInitFailed(fmt.Sprintf("ReadUnmarshalYAML %s %v", solution.SettingsFileName, err))
		return err
	}
	err = env.Parse(&environment)
	if err != nil {
		global.logInitFailed(fmt.Sprintf("env.Parse %v", err))
		return err
	}
	err = instanceDeployment.Situate(environment)
	if err != nil {
		global.logInitFailed(fmt.Sprintf("instanceDeployment.Situate %v", err))
		return err
	}

	settings := instanceDeployment.Core.SolutionSettings
	global.environment = instanceDeployment.Core.EnvironmentName
	global.instanceName = instanceDeployment.Core.InstanceName
	global.microserviceName = instanceDeployment.Core.ServiceName
	global.projectID = settings.Hosting.ProjectID
	global.retryTimeOutSeconds = instanceDeployment.Settings.Service.GCF.RetryTimeOutSeconds

	ruleSet, rulesSource, err := buildRuleSet(settings.Detection.RulesFilePath, settings.Detection.EventNames)
	if err != nil {
		global.logInitFailed(fmt.Sprintf("buildRuleSet %v", err))
		return err
	}
	if settings.Detection.ObjectNameRegex != "" {
		global.objectNameRegex = regexp.MustCompile(settings.Detection.ObjectNameRegex)
	}

	log.Println(glo.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "coldstart",
		Description: fmt.Sprintf("rules from %s monitoring %s alerting on topic %s",
			rulesSource,
			strings.Join(ruleSet.EventNames(), ","),
			settings.Hosting.Pubsub.TopicNames.SecurityAlerts),
		InitID: global.initID,
	})

	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		global.logInitFailed(fmt.Sprintf("storage.NewClient(ctx) %v", err))
		return err
	}
	pubsubPublisherClient, err := pubsub.NewPublisherClient(ctx)
	if err != nil {
		global.logInitFailed(fmt.Sprintf("pubsub.NewPublisherClient(ctx) %v", err))
		return err
	}
	err = gps.CheckPublishPermission(ctx, pubsubPublisherClient, global.projectID, settings.Hosting.Pubsub.TopicNames.SecurityAlerts)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "WARNING",
			Message:          "publish_permission_unchecked",
			Description:      fmt.Sprintf("gps.CheckPublishPermission %v", err),
			InitID:           global.initID,
		})
	}

	dispatcher := &alr.Dispatcher{
		Publisher: gps.NewPublisher(pubsubPublisherClient, global.projectID),
		Channel:   settings.Hosting.Pubsub.TopicNames.SecurityAlerts,
		LogEntry:  global.logEntry,
	}
	if collectionID := settings.Hosting.FireStore.CollectionIDs.AlertClaims; collectionID != "" {
		firestoreClient, err := firestore.NewClient(ctx, global.projectID)
		if err != nil {
			global.logInitFailed(fmt.Sprintf("firestore.NewClient(ctx, %s) %v", global.projectID, err))
			return err
		}
		dispatcher.Claimer = gfs.NewClaimStore(firestoreClient, collectionID)
	}

	global.orchestrator = &bat.Orchestrator{
		Fetcher:        gcs.NewFetcher(storageClient),
		RuleSet:        ruleSet,
		Dispatcher:     loggingDispatcher{next: dispatcher, logEntry: global.logEntry},
		MaxConcurrency: settings.Detection.MaxConcurrency,
	}
	return nil
}

// EntryPoint is the function to be executed for each cloud function occurence triggered by GCS
func EntryPoint(ctxEvent context.Context, gcsEvent gcs.Event, global *Global) error {
	ok, metadata, err := global.initialRetryCheck(ctxEvent)
	if !ok {
		return err
	}
	if gcsEvent.ResourceState == "not_exists" {
		global.logCancel(metadata, fmt.Sprintf("deleted object %v", gcsEvent.Name))
		return nil
	}
	if gcsEvent.Size == "0" {
		global.logCancel(metadata, fmt.Sprintf("empty object %v", gcsEvent.Name))
		return nil
	}
	return global.process(ctxEvent, metadata, gcsEvent.ObjectReferences())
}

// EntryPointPubSub is the function to be executed for each cloud function occurence triggered by a storage notification relayed by PubSub
func EntryPointPubSub(ctxEvent context.Context, PubSubMessage gps.PubSubMessage, global *Global) error {
	ok, metadata, err := global.initialRetryCheck(ctxEvent)
	if !ok {
		return err
	}
	refs, err := gcs.ObjectReferencesFromPubSub(PubSubMessage.Data, PubSubMessage.Attributes)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "noretry",
			Description:        fmt.Sprintf("gcs.ObjectReferencesFromPubSub %v", err),
			TriggeringPubsubID: metadata.EventID,
		})
		return nil // NO RETRY
	}
	return global.process(ctxEvent, metadata, refs)
}

// initialRetryCheck returns false with the error to return when the invocation must stop
func (global *Global) initialRetryCheck(ctxEvent context.Context) (bool, *metadata.Metadata, error) {
	if global.orchestrator == nil {
		log.Println(glo.Entry{
			Severity:    "CRITICAL",
			Message:     "noretry",
			Description: "cold start initialization failed, see init_failed entry",
			InitID:      global.initID,
		})
		return false, nil, nil // NO RETRY
	}
	ok, metadata, err := gcf.IntialRetryCheck(ctxEvent, global.retryTimeOutSeconds)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "CRITICAL",
			Message:          "redo_on_transient",
			Description:      fmt.Sprintf("gcf.IntialRetryCheck %v", err),
		})
		return false, nil, err // RETRY
	}
	if !ok {
		now := time.Now()
		log.Println(glo.Entry{
			MicroserviceName:           global.microserviceName,
			InstanceName:               global.instanceName,
			Environment:                global.environment,
			Severity:                   "CRITICAL",
			Message:                    "noretry",
			Description:                "event too old",
			TriggeringPubsubID:         metadata.EventID,
			TriggeringPubsubAgeSeconds: now.Sub(metadata.Timestamp).Seconds(),
			TriggeringPubsubTimestamp:  &metadata.Timestamp,
			Now:                        &now,
		})
		return false, metadata, nil // NO RETRY
	}
	return true, metadata, nil
}

func (global *Global) process(ctx context.Context, metadata *metadata.Metadata, refs []ctl.ObjectReference) error {
	start := time.Now()
	stepStack := glo.Steps{newStep(metadata)}
	invocationID := uuid.New().String()
	ctx = withInvocationID(ctx, invocationID)

	refs, skipped := filterObjectReferences(refs, global.objectNameRegex)
	for _, ref := range skipped {
		global.logCancel(metadata, fmt.Sprintf("not an audit log object %s", ref))
	}

	log.Println(glo.Entry{
		MicroserviceName:           global.microserviceName,
		InstanceName:               global.instanceName,
		Environment:                global.environment,
		Severity:                   "NOTICE",
		Message:                    "start",
		InvocationID:               invocationID,
		ObjectCount:                len(refs),
		TriggeringPubsubID:         metadata.EventID,
		TriggeringPubsubAgeSeconds: start.Sub(metadata.Timestamp).Seconds(),
		TriggeringPubsubTimestamp:  &metadata.Timestamp,
		Now:                        &start,
	})

	outcome := global.orchestrator.Process(ctx, refs)

	for _, objectError := range outcome.Errors {
		severity := "WARNING"
		if objectError.Kind.Transient() || objectError.Kind == bat.KindUnexpected {
			severity = "CRITICAL"
		}
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           severity,
			Message:            "object_failed",
			Component:          "batch_orchestrator",
			InvocationID:       invocationID,
			Description:        objectError.Err.Error(),
			ObjectName:         objectError.Ref.String(),
			Stage:              string(objectError.Stage),
			Kind:               string(objectError.Kind),
			TriggeringPubsubID: metadata.EventID,
		})
	}

	result := outcome.Result()
	now := time.Now()
	log.Println(glo.Entry{
		MicroserviceName:     global.microserviceName,
		InstanceName:         global.instanceName,
		Environment:          global.environment,
		Severity:             "NOTICE",
		Message:              "finish",
		InvocationID:         invocationID,
		Description:          result.Message,
		Status:               result.Status,
		ObjectCount:          outcome.ObjectCount,
		EventCount:           outcome.EventCount,
		MatchCount:           outcome.MatchCount,
		DeliveredCount:       outcome.DeliveredCount,
		DuplicateCount:       outcome.DuplicateCount,
		ErrorCount:           len(outcome.Errors),
		TriggeringPubsubID:   metadata.EventID,
		OriginEventTimestamp: &metadata.Timestamp,
		LatencySeconds:       now.Sub(start).Seconds(),
		LatencyE2ESeconds:    now.Sub(metadata.Timestamp).Seconds(),
		StepStack:            stepStack,
		Now:                  &now,
	})

	if outcome.Transient() {
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "redo_on_transient",
			InvocationID:       invocationID,
			Description:        result.Message,
			TriggeringPubsubID: metadata.EventID,
		})
		return fmt.Errorf("%s: %s", result.Status, result.Message) // RETRY
	}
	return nil
}

func newStep(metadata *metadata.Metadata) glo.Step {
	resourceName := ""
	if metadata.Resource != nil {
		parts := strings.Split(metadata.Resource.Name, "/")
		resourceName = parts[len(parts)-1]
	}
	return glo.Step{
		StepID:        fmt.Sprintf("%s/%s", resourceName, metadata.EventID),
		StepTimestamp: metadata.Timestamp,
	}
}

func (global *Global) logEntry(entry glo.Entry) {
	entry.MicroserviceName = global.microserviceName
	entry.InstanceName = global.instanceName
	entry.Environment = global.environment
	log.Println(entry)
}

func (global *Global) logCancel(metadata *metadata.Metadata, description string) {
	log.Println(glo.Entry{
		MicroserviceName:   global.microserviceName,
		InstanceName:       global.instanceName,
		Environment:        global.environment,
		Severity:           "NOTICE",
		Message:            "cancel",
		Description:        description,
		TriggeringPubsubID: metadata.EventID,
	})
}

func (global *Global) logInitFailed(description string) {
	log.Println(glo.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "CRITICAL",
		Message:          "init_failed",
		Description:      description,
		InitID:           global.initID,
	})
}
