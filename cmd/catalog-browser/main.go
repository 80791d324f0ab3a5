// catalog-browser — интерактивный терминальный клиент каталога.
// Удобен для ручной проверки API без Mini App: листает выдачу,
// переключает каталоги, меняет фильтры и сортировку.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/G3ndalf/auto-sales-bot-sub000/pkg/catalogclient"
	"github.com/G3ndalf/auto-sales-bot-sub000/pkg/catalogsession"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "базовый URL catalog-service")
	userID := flag.Int64("user", 0, "telegram_id для заголовка X-Telegram-User-Id (0 = не слать)")
	flag.Parse()

	opts := []catalogclient.Option{}
	if *userID != 0 {
		opts = append(opts, catalogclient.WithUserID(*userID))
	}
	client := catalogclient.New(*baseURL, opts...)

	cache := catalogsession.NewViewCache()
	sessions := map[catalogclient.CatalogType]*catalogsession.Session{
		catalogclient.CatalogCars:   catalogsession.NewSession(catalogclient.CatalogCars, client, catalogsession.WithCache(cache)),
		catalogclient.CatalogPlates: catalogsession.NewSession(catalogclient.CatalogPlates, client, catalogsession.WithCache(cache)),
	}

	ctx := context.Background()
	current := catalogclient.CatalogCars
	sess := sessions[current]
	if _, err := sess.Mount(ctx); err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	printPage(current, sess)

	fmt.Println(`Команды: more | cars | plates | search <текст> | clearsearch | sort <date_new|date_old|price_asc|price_desc|mileage_asc>
  city <город> | brand <марка> | model <модель> | price <min> <max> | reset | refresh | retry | show <id> | quit`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("[%s]> ", current)
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		var err error
		switch cmd {
		case "quit", "exit", "q":
			return

		case "cars", "plates":
			next := catalogclient.CatalogCars
			if cmd == "plates" {
				next = catalogclient.CatalogPlates
			}
			if next == current {
				continue
			}
			// Уходим с экрана: слепок в кэш, позиция прокрутки терминалу не нужна.
			sess.Leave(0)
			current = next
			sess = sessions[current]
			var restored bool
			restored, err = sess.Mount(ctx)
			if restored {
				fmt.Println("(восстановлено из кэша)")
			}

		case "more":
			if !sess.HasMore() {
				fmt.Println("Больше ничего нет.")
				continue
			}
			err = sess.LoadMore(ctx)

		case "search":
			sess.SetQueryText(ctx, arg)
			// Даём дебаунсу сработать, затем показываем результат.
			time.Sleep(catalogsession.DefaultDebounce + 200*time.Millisecond)

		case "clearsearch":
			err = sess.ClearSearch(ctx)

		case "sort":
			err = sess.SetSort(ctx, catalogclient.Sort(arg))

		case "city":
			err = sess.SetCity(ctx, arg)

		case "brand":
			err = sess.SetBrand(ctx, arg)

		case "model":
			err = sess.SetModel(ctx, arg)

		case "price":
			parts := strings.Fields(arg)
			if len(parts) != 2 {
				fmt.Println("Нужно два числа: price <min> <max>")
				continue
			}
			min, err1 := strconv.Atoi(parts[0])
			max, err2 := strconv.Atoi(parts[1])
			if err1 != nil || err2 != nil {
				fmt.Println("Нужно два числа: price <min> <max>")
				continue
			}
			err = sess.ApplyFilters(ctx, catalogsession.Filters{PriceMin: &min, PriceMax: &max})

		case "reset":
			err = sess.ResetAll(ctx)

		case "refresh":
			err = sess.Refresh(ctx)

		case "retry":
			err = sess.Retry(ctx)

		case "show":
			id, convErr := strconv.ParseInt(arg, 10, 64)
			if convErr != nil {
				fmt.Println("Нужен числовой id: show <id>")
				continue
			}
			showDetails(ctx, client, current, id)
			continue

		default:
			fmt.Printf("Неизвестная команда: %q\n", cmd)
			continue
		}

		if err != nil {
			fmt.Printf("Ошибка: %v (retry — повторить)\n", err)
			continue
		}
		printPage(current, sess)
	}
}

func printPage(catalog catalogclient.CatalogType, sess *catalogsession.Session) {
	items := sess.Items()
	fmt.Printf("--- %s: показано %d из %d ---\n", catalog, len(items), sess.Total())
	for _, ad := range items {
		fmt.Println(formatPreview(catalog, ad))
	}
	if sess.HasMore() {
		fmt.Println("(more — загрузить ещё)")
	}
}

func formatPreview(catalog catalogclient.CatalogType, ad catalogclient.AdPreview) string {
	if catalog == catalogclient.CatalogPlates {
		return fmt.Sprintf("#%d  %s — %d руб., %s (просмотров: %d)",
			ad.ID, ad.PlateNumber, ad.Price, ad.City, ad.ViewCount)
	}
	return fmt.Sprintf("#%d  %s %s %d, %d км — %d руб., %s (просмотров: %d)",
		ad.ID, ad.Brand, ad.Model, ad.Year, ad.Mileage, ad.Price, ad.City, ad.ViewCount)
}

func showDetails(ctx context.Context, client *catalogclient.Client, catalog catalogclient.CatalogType, id int64) {
	if catalog == catalogclient.CatalogPlates {
		d, err := client.PlateDetails(ctx, id)
		if err != nil {
			fmt.Printf("Ошибка: %v\n", err)
			return
		}
		fmt.Printf("Номер %s — %d руб.\nГород: %s\nОписание: %s\nТелефон: %s\nФото: %d, просмотров: %d\n",
			d.PlateNumber, d.Price, d.City, d.Description, d.ContactPhone, len(d.Photos), d.ViewCount)
		return
	}
	d, err := client.CarDetails(ctx, id)
	if err != nil {
		fmt.Printf("Ошибка: %v\n", err)
		return
	}
	fmt.Printf("%s %s %d — %d руб.\nПробег: %d км, %s, %s, %.1f л\nГород: %s\nОписание: %s\nТелефон: %s\nФото: %d, просмотров: %d\n",
		d.Brand, d.Model, d.Year, d.Price, d.Mileage, d.FuelType, d.Transmission, d.EngineVolume,
		d.City, d.Description, d.ContactPhone, len(d.Photos), d.ViewCount)
}
