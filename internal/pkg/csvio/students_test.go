package csvio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadStudentsWithHeader(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"admissionNumber,firstName,lastName,class,section,parentEmail",
		"ADM001,Asha,Rao,5,A,parent@x.com",
		"ADM002,Vik,Shah,5,B,",
	}, "\n")

	rows, rowErrors, err := ReadStudents(strings.NewReader(input))
	require.NoError(t, err)
	require.Empty(t, rowErrors)
	require.Len(t, rows, 2)
	require.Equal(t, "ADM001", rows[0].AdmissionNo)
	require.Equal(t, "Asha", rows[0].FirstName)
	require.Equal(t, "parent@x.com", rows[0].ParentEmail)
	require.Empty(t, rows[1].ParentEmail)
}

func TestReadStudentsMalformedRowsSkipped(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"ADM001,Asha,Rao,5,A,parent@x.com",
		"too,few,columns",
		",Missing,Admission,5,A,",
		"ADM003,Nia,Khan,6,A,other@x.com",
	}, "\n")

	rows, rowErrors, err := ReadStudents(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Len(t, rowErrors, 2)
	require.Contains(t, rowErrors[0], "row 2")
	require.Contains(t, rowErrors[1], "row 3")
}

func TestWriteStudentsRoundTrip(t *testing.T) {
	t.Parallel()

	in := []StudentRow{
		{AdmissionNo: "ADM001", FirstName: "Asha", LastName: "Rao", ClassName: "5", Section: "A", ParentEmail: "p@x.com"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStudents(&buf, in))

	out, rowErrors, err := ReadStudents(&buf)
	require.NoError(t, err)
	require.Empty(t, rowErrors)
	require.Equal(t, in, out)
}
