// Package xmlcodec serializes a validated record into the NIBRS 4.0 XML
// wire format. Output is deterministic: identical input yields
// byte-identical output, with no timestamps or generated identifiers.
package xmlcodec

import (
	"fmt"
	"strings"

	"github.com/patrolsync/nibrs/internal/codes"
	"github.com/patrolsync/nibrs/internal/models"
)

const nibrsNamespace = "http://fbi.gov/cjis/nibrs/4.0"

// Build serializes the record. Victim elements and the
// RelationshipToVictim they anchor are omitted entirely when every
// offense in the record is victimless; a Society victim still appears in
// the JSON record but the wire format models it implicitly.
func Build(segments models.NibrsSegments) (string, error) {
	if len(segments.Offenses) == 0 {
		return "", fmt.Errorf("cannot serialize a record with no offenses")
	}
	if segments.Administrative.IncidentNumber == "" {
		return "", fmt.Errorf("cannot serialize a record with no incident number")
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<nibrs:Submission xmlns:nibrs=%q>`+"\n", nibrsNamespace)
	b.WriteString("  <Incident>\n")

	writeAdministrative(&b, segments.Administrative)

	for _, o := range segments.Offenses {
		writeOffense(&b, o)
	}

	if !victimlessOnly(segments) {
		for _, v := range segments.Victims {
			writeVictim(&b, v)
		}
		for _, o := range segments.Offenders {
			writeOffender(&b, o, true)
		}
	} else {
		for _, o := range segments.Offenders {
			writeOffender(&b, o, false)
		}
	}

	for _, p := range segments.Properties {
		writeProperty(&b, p)
	}

	if segments.Evidence != nil {
		writeEvidence(&b, *segments.Evidence)
	}

	for _, a := range segments.Arrestees {
		writeArrestee(&b, a)
	}

	element(&b, 4, "Location", segments.LocationCode)
	element(&b, 4, "Narrative", segments.Narrative)

	b.WriteString("  </Incident>\n")
	b.WriteString("</nibrs:Submission>\n")
	return b.String(), nil
}

// victimlessOnly reports whether every offense code is in the victimless
// set.
func victimlessOnly(segments models.NibrsSegments) bool {
	for _, o := range segments.Offenses {
		if !codes.IsVictimless(o.Code) {
			return false
		}
	}
	return true
}

func writeAdministrative(b *strings.Builder, admin models.Administrative) {
	b.WriteString("    <Administrative>\n")
	element(b, 6, "IncidentNumber", admin.IncidentNumber)
	element(b, 6, "IncidentDate", admin.IncidentDate)
	if admin.IncidentTime != "" {
		element(b, 6, "IncidentTime", admin.IncidentTime)
	}
	element(b, 6, "ClearedExceptionally", admin.ClearedExceptionally)
	if admin.ExceptionalClearanceDate != "" {
		element(b, 6, "ExceptionalClearanceDate", admin.ExceptionalClearanceDate)
	}
	if admin.ClearedBy != "" {
		element(b, 6, "ClearedBy", admin.ClearedBy)
	}
	b.WriteString("    </Administrative>\n")
}

func writeOffense(b *strings.Builder, o models.Offense) {
	b.WriteString("    <Offense>\n")
	element(b, 6, "SequenceNumber", fmt.Sprintf("%d", o.SequenceNumber))
	element(b, 6, "OffenseCode", o.Code)
	element(b, 6, "AttemptedCompleted", o.AttemptedCompleted)
	if o.Description != "" {
		element(b, 6, "Description", o.Description)
	}
	for _, w := range o.WeaponCodes {
		element(b, 6, "WeaponInvolved", w)
	}
	b.WriteString("    </Offense>\n")
}

func writeVictim(b *strings.Builder, v models.Victim) {
	b.WriteString("    <Victim>\n")
	element(b, 6, "SequenceNumber", fmt.Sprintf("%d", v.SequenceNumber))
	element(b, 6, "VictimType", string(v.Type))
	if v.Age != models.AgeUnknown {
		element(b, 6, "Age", fmt.Sprintf("%d", v.Age))
	}
	if v.Sex != "" {
		element(b, 6, "Sex", v.Sex)
	}
	if v.Race != "" {
		element(b, 6, "Race", v.Race)
	}
	if v.Ethnicity != "" {
		element(b, 6, "Ethnicity", v.Ethnicity)
	}
	if v.InjuryCode != "" {
		element(b, 6, "Injury", v.InjuryCode)
	}
	b.WriteString("    </Victim>\n")
}

func writeOffender(b *strings.Builder, o models.Offender, withRelationship bool) {
	b.WriteString("    <Offender>\n")
	element(b, 6, "SequenceNumber", fmt.Sprintf("%d", o.SequenceNumber))
	if o.Age != models.AgeUnknown {
		element(b, 6, "Age", fmt.Sprintf("%d", o.Age))
	}
	if o.Sex != "" {
		element(b, 6, "Sex", o.Sex)
	}
	if o.Race != "" {
		element(b, 6, "Race", o.Race)
	}
	if withRelationship && o.Relationship != "" {
		element(b, 6, "RelationshipToVictim", o.Relationship)
	}
	b.WriteString("    </Offender>\n")
}

func writeProperty(b *strings.Builder, p models.Property) {
	b.WriteString("    <Property>\n")
	element(b, 6, "SequenceNumber", fmt.Sprintf("%d", p.SequenceNumber))
	element(b, 6, "DescriptionCode", p.DescriptionCode)
	if p.Description != "" {
		element(b, 6, "Description", p.Description)
	}
	element(b, 6, "LossType", fmt.Sprintf("%d", p.LossType))
	element(b, 6, "Value", fmt.Sprintf("%.2f", p.Value))
	if p.Seized {
		element(b, 6, "Seized", "true")
	}
	if p.DrugQuantity != "" {
		element(b, 6, "DrugQuantity", p.DrugQuantity)
		element(b, 6, "DrugMeasurement", p.DrugMeasurement)
	}
	b.WriteString("    </Property>\n")
}

func writeEvidence(b *strings.Builder, e models.Evidence) {
	b.WriteString("    <Evidence>\n")
	for _, item := range e.Items {
		element(b, 6, "Item", item)
	}
	if e.Description != "" {
		element(b, 6, "Description", e.Description)
	}
	b.WriteString("    </Evidence>\n")
}

func writeArrestee(b *strings.Builder, a models.Arrestee) {
	b.WriteString("    <Arrestee>\n")
	element(b, 6, "SequenceNumber", fmt.Sprintf("%d", a.SequenceNumber))
	if a.Name != "" {
		element(b, 6, "Name", a.Name)
	}
	element(b, 6, "ArrestDate", a.ArrestDate)
	element(b, 6, "ArrestType", string(a.ArrestType))
	if a.Age != models.AgeUnknown {
		element(b, 6, "Age", fmt.Sprintf("%d", a.Age))
	}
	for _, code := range a.OffenseCodes {
		element(b, 6, "OffenseCode", code)
	}
	b.WriteString("    </Arrestee>\n")
}

func element(b *strings.Builder, indent int, name, value string) {
	b.WriteString(strings.Repeat(" ", indent))
	fmt.Fprintf(b, "<%s>%s</%s>\n", name, escape(value), name)
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(value string) string {
	return escaper.Replace(value)
}
