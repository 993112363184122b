// Command bondwalk is a schema-less field-walker for Bond CompactBinary v1
// streams. Given an encoded blob, it recurses through the struct/list/set/map
// framing and prints the field tree without knowing the schema ahead of
// time — the same capability the core's Reader.Skip relies on internally,
// exposed here as a standalone inspection tool.
package main

import (
	"fmt"
	"os"

	"github.com/compactbond/bondcb/lib/buffer"
	"github.com/compactbond/bondcb/lib/compact"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var log = logrus.New()

func walkCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.NewExitError("Error: input file required ...", 1)
	}
	if c.Bool("trace") {
		log.SetLevel(logrus.TraceLevel)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("Error: %s", err), 1)
	}

	r := compact.NewReader(buffer.NewBorrowed(data))
	log.WithField("bytes", len(data)).Trace("opened input")
	if err := walkStruct(r, 0); err != nil {
		return cli.NewExitError(fmt.Sprintf("Error: %s", err), 1)
	}
	return nil
}

func walkStruct(r *compact.Reader, depth int) error {
	indent := indentFor(depth)
	for {
		id, typ, err := r.ReadFieldHeader()
		if err != nil {
			return err
		}
		if typ == compact.TypeStop || typ == compact.TypeStopBase {
			return nil
		}
		log.WithFields(logrus.Fields{"id": id, "type": typ.String()}).Trace("field")
		if err := printField(r, depth, indent, id, typ); err != nil {
			return err
		}
	}
}

func printField(r *compact.Reader, depth int, indent string, id uint16, typ compact.Type) error {
	switch typ {
	case compact.TypeBool:
		v, err := r.ReadBoolValue()
		if err != nil {
			return err
		}
		fmt.Printf("%sid=%d %s = %t\n", indent, id, typ, v)
	case compact.TypeUint8:
		v, err := r.ReadUint8Value()
		if err != nil {
			return err
		}
		fmt.Printf("%sid=%d %s = %d\n", indent, id, typ, v)
	case compact.TypeInt8:
		v, err := r.ReadInt8Value()
		if err != nil {
			return err
		}
		fmt.Printf("%sid=%d %s = %d\n", indent, id, typ, v)
	case compact.TypeUint16:
		v, err := r.ReadUint16Value()
		if err != nil {
			return err
		}
		fmt.Printf("%sid=%d %s = %d\n", indent, id, typ, v)
	case compact.TypeInt16:
		v, err := r.ReadInt16Value()
		if err != nil {
			return err
		}
		fmt.Printf("%sid=%d %s = %d\n", indent, id, typ, v)
	case compact.TypeUint32:
		v, err := r.ReadUint32Value()
		if err != nil {
			return err
		}
		fmt.Printf("%sid=%d %s = %d\n", indent, id, typ, v)
	case compact.TypeInt32:
		v, err := r.ReadInt32Value()
		if err != nil {
			return err
		}
		fmt.Printf("%sid=%d %s = %d\n", indent, id, typ, v)
	case compact.TypeUint64:
		v, err := r.ReadUint64Value()
		if err != nil {
			return err
		}
		fmt.Printf("%sid=%d %s = %d\n", indent, id, typ, v)
	case compact.TypeInt64:
		v, err := r.ReadInt64Value()
		if err != nil {
			return err
		}
		fmt.Printf("%sid=%d %s = %d\n", indent, id, typ, v)
	case compact.TypeFloat:
		v, err := r.ReadFloatValue()
		if err != nil {
			return err
		}
		fmt.Printf("%sid=%d %s = %g\n", indent, id, typ, v)
	case compact.TypeDouble:
		v, err := r.ReadDoubleValue()
		if err != nil {
			return err
		}
		fmt.Printf("%sid=%d %s = %g\n", indent, id, typ, v)
	case compact.TypeString, compact.TypeWString:
		v, err := r.ReadStringValue()
		if err != nil {
			return err
		}
		fmt.Printf("%sid=%d %s = %q\n", indent, id, typ, v)
	case compact.TypeStruct:
		fmt.Printf("%sid=%d %s\n", indent, id, typ)
		if err := walkStruct(r, depth+1); err != nil {
			return err
		}
	case compact.TypeList, compact.TypeSet:
		elementType, count, err := r.ReadListBegin()
		if err != nil {
			return err
		}
		fmt.Printf("%sid=%d %s<%s>[%d]\n", indent, id, typ, elementType, count)
		for i := uint32(0); i < count; i++ {
			if err := printField(r, depth+1, indentFor(depth+1), 0, elementType); err != nil {
				return err
			}
		}
	case compact.TypeMap:
		keyType, valueType, count, err := r.ReadMapBegin()
		if err != nil {
			return err
		}
		fmt.Printf("%sid=%d %s<%s,%s>[%d]\n", indent, id, typ, keyType, valueType, count)
		for i := uint32(0); i < count; i++ {
			if err := printField(r, depth+1, indentFor(depth+1), 0, keyType); err != nil {
				return err
			}
			if err := printField(r, depth+1, indentFor(depth+1), 0, valueType); err != nil {
				return err
			}
		}
	default:
		log.WithField("type", typ.String()).Warn("skipping unrecognized type")
		return r.Skip(typ)
	}
	return nil
}

func indentFor(depth int) string {
	indent := make([]byte, depth*2)
	for i := range indent {
		indent[i] = ' '
	}
	return string(indent)
}

func main() {
	app := cli.NewApp()
	app.Name = "bondwalk"
	app.Usage = "walk a Bond CompactBinary v1 stream without a schema"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		cli.Command{
			Name:   "walk",
			Usage:  "bondwalk walk <file> -- print the field tree of an encoded blob",
			Action: walkCommand,
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "trace", Usage: "log each field header at trace level"},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
