package validator

import (
	"fmt"

	"github.com/patrolsync/nibrs/internal/codes"
	"github.com/patrolsync/nibrs/internal/models"
)

// validateStructural checks schema conformance: enum membership and
// numeric bounds. Any failure here is fatal and short-circuits the
// remaining layers.
func validateStructural(segments models.NibrsSegments) []string {
	var errs []string

	for _, o := range segments.Offenses {
		if !codes.IsValidOffenseCode(o.Code) {
			errs = append(errs, fmt.Sprintf("offense code %q is not a valid Group A or Group B code", o.Code))
		}
		if o.AttemptedCompleted != "A" && o.AttemptedCompleted != "C" {
			errs = append(errs, fmt.Sprintf("offense %s attempted/completed flag %q must be A or C", o.Code, o.AttemptedCompleted))
		}
	}

	for i, v := range segments.Victims {
		if !validVictimType(v.Type) {
			errs = append(errs, fmt.Sprintf("victim %d type %q is not a valid victim type", i+1, v.Type))
		}
		if !validAge(v.Age) {
			errs = append(errs, fmt.Sprintf("victim %d age %d is outside [%d, %d]", i+1, v.Age, models.AgeMin, models.AgeMax))
		}
		if !validSex(v.Sex) {
			errs = append(errs, fmt.Sprintf("victim %d sex %q must be M, F, or U", i+1, v.Sex))
		}
	}

	for i, o := range segments.Offenders {
		if !validAge(o.Age) {
			errs = append(errs, fmt.Sprintf("offender %d age %d is outside [%d, %d]", i+1, o.Age, models.AgeMin, models.AgeMax))
		}
		if !validSex(o.Sex) {
			errs = append(errs, fmt.Sprintf("offender %d sex %q must be M, F, or U", i+1, o.Sex))
		}
	}

	for i, p := range segments.Properties {
		if p.Value < 0 {
			errs = append(errs, fmt.Sprintf("property %d value %.2f must be non-negative", i+1, p.Value))
		}
	}

	for i, a := range segments.Arrestees {
		if !validArrestType(a.ArrestType) {
			errs = append(errs, fmt.Sprintf("arrestee %d arrest type %q must be O, S, or T", i+1, a.ArrestType))
		}
		if !validAge(a.Age) {
			errs = append(errs, fmt.Sprintf("arrestee %d age %d is outside [%d, %d]", i+1, a.Age, models.AgeMin, models.AgeMax))
		}
	}

	if flag := segments.Administrative.ClearedExceptionally; flag != "" && flag != "Y" && flag != "N" {
		errs = append(errs, fmt.Sprintf("exceptional clearance flag %q must be Y or N", flag))
	}

	return errs
}

func validVictimType(t models.VictimType) bool {
	for _, valid := range models.ValidVictimTypes {
		if t == valid {
			return true
		}
	}
	return false
}

func validArrestType(t models.ArrestType) bool {
	for _, valid := range models.ValidArrestTypes {
		if t == valid {
			return true
		}
	}
	return false
}

func validAge(age int) bool {
	return age == models.AgeUnknown || (age >= models.AgeMin && age <= models.AgeMax)
}

func validSex(sex string) bool {
	return sex == "" || sex == "M" || sex == "F" || sex == "U"
}
