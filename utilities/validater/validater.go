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

package validater

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

const tagKeyName = "valid"

// validater interface
type validater interface {
	validate(interface{}) (bool, error)
}

// defaultValidater is always valid
type defaultValidater struct {
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v defaultValidater) validate(val interface{}) (bool, error) {
	return true, nil
}

// isNotZeroValueValidater do not accept zero value
type isNotZeroValueValidater struct {
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v isNotZeroValueValidater) validate(value interface{}) (bool, error) {
	typ := reflect.TypeOf(value)
	if typ == nil {
		return false, fmt.Errorf("Should NOT be a zero value nil")
	}
	kind := typ.Kind()
	switch kind {
	case reflect.String:
		if len(value.(string)) == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	case reflect.Int:
		if value.(int) == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	case reflect.Int64:
		if value.(int64) == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	case reflect.Slice:
		if reflect.ValueOf(value).Len() == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	default:
		return false, fmt.Errorf("Unmanaged kind by 'isNotZeroValueValidater' %s", kind)
	}
	return true, nil
}

// isPositiveValidater accepts only strictly positive integers
type isPositiveValidater struct {
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v isPositiveValidater) validate(value interface{}) (bool, error) {
	switch n := value.(type) {
	case int:
		if n > 0 {
			return true, nil
		}
	case int64:
		if n > 0 {
			return true, nil
		}
	default:
		return false, fmt.Errorf("Should be int or int64")
	}
	return false, fmt.Errorf("Should be strictly positive, is %v", value)
}

// isRegexpValidater accepts empty strings and valid regular expressions
type isRegexpValidater struct {
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v isRegexpValidater) validate(value interface{}) (bool, error) {
	expression, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("Should be string")
	}
	if expression == "" {
		return true, nil
	}
	if _, err := regexp.Compile(expression); err != nil {
		return false, fmt.Errorf("Should be a valid regular expression %v", err)
	}
	return true, nil
}

func getValidater(kind reflect.Kind, tagValue string) validater {
	tagValueParts := strings.Split(tagValue, ",")
	tagPrefix := tagValueParts[0]
	switch tagPrefix {
	case "isNotZeroValue":
		return isNotZeroValueValidater{}
	case "isPositive":
		return isPositiveValidater{}
	case "isRegexp":
		return isRegexpValidater{}
	}
	return defaultValidater{}
}

// getValidationErrors recursively loop through a struct to find validation errors
func getValidationErrors(structure interface{}, pedigree string) []error {
	errs := []error{}
	if structure == nil {
		return errs
	}
	value := reflect.ValueOf(structure)
	if value.Kind() == reflect.Interface || value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return []error{fmt.Errorf("type %s is not a struct", value.Kind())}
	}

	for i := 0; i < value.NumField(); i++ {
		valueField := value.Field(i)
		typeField := value.Type().Field(i)
		if !typeField.IsExported() {
			continue
		}
		if valueField.Kind() == reflect.Interface {
			valueField = valueField.Elem()
		}
		// time.Time is a struct with only unexported fields, tag it valid:"-"
		if typeField.Tag.Get(tagKeyName) != "-" &&
			(valueField.Kind() == reflect.Struct || (valueField.Kind() == reflect.Ptr && valueField.Elem().Kind() == reflect.Struct)) {
			childErrs := getValidationErrors(valueField.Interface(), fmt.Sprintf("%s/%s", pedigree, typeField.Name))
			errs = append(errs, childErrs...)
		} else {
			validater := getValidater(typeField.Type.Kind(), typeField.Tag.Get(tagKeyName))
			if !valueField.IsValid() {
				continue
			}
			ok, err := validater.validate(valueField.Interface())
			if !ok {
				errs = append(errs, fmt.Errorf("Validater error %s '%s' %v", pedigree, typeField.Name, err))
			}
		}
	}
	return errs
}

// ValidateStruct validates the fields of a struct, one line per invalid field in the returned error
func ValidateStruct(structure interface{}, pedigree string) (err error) {
	validationErrors := getValidationErrors(structure, pedigree)
	if len(validationErrors) > 0 {
		return fmt.Errorf("settings validation failed: %w", errors.Join(validationErrors...))
	}
	return nil
}
